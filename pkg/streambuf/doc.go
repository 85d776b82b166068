// Package streambuf provides the renderer's output pipe: Buffer routes
// writes either straight to the consumer, into a redirect sink (for
// stacks), or into a deferred chunk list once the first top-level
// stack-out has been reached. StackRegistry is the per-render map from
// stack identity to its accumulator sink.
package streambuf
