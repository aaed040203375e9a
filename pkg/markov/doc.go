/*
Package markov builds word-level n-gram models from a token sequence and
generates new text by random walk over them.

Training slides a window of N tokens across the input and counts, for every
window, which token followed it. A Generator turns each window's counts into a
cumulative distribution once, then extends a randomly chosen seed window one
sampled token at a time until the requested length is reached or the walk
lands on a window that was never seen during training.

The random source is injected, so runs can be made reproducible with
NewSource or fully scripted in tests.
*/
package markov
