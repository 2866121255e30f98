// Package workflow holds the state of the summarize-and-share workflow: the
// instruction, the summary and how it is previewed, and email dispatch.
//
// Each controller is a plain state object with transition methods. Long-running
// work is split into Begin (validate and enter the in-flight phase) and Complete
// (apply the outcome) so an event loop can run the remote call in between
// without holding any lock. The synchronous Generate and Send helpers do all
// three steps for callers without an event loop.
//
// Controllers are not safe for concurrent use. Generation and dispatch keep
// separate phases and may be in flight at the same time.
package workflow
