// Package workqueue is a throttled, single-in-flight task scheduler.
//
// A Queue holds a double-ended sequence of pending items and hands them, one at
// a time, to a Worker. The worker starts the task and returns; the owner later
// reports completion with Finish. Fresh work is appended with Submit, retries go
// to the head with Requeue.
//
// States:
//
//	Idle             nothing in flight, nothing dispatchable
//	Working          an item is in flight
//	Pausing(until)   dispatch suspended until the deadline
//
// Transitions:
//
//	Idle    → Working          on dispatch
//	Working → Working          Finish with items pending (next item dispatched)
//	Working → Idle             Finish with nothing pending
//	Idle|Working → Pausing     PauseUntil / PauseFor / rate limiter delay
//	Pausing → Working|Idle     automatically once the deadline has passed
//
// A pause never interrupts the in-flight item; it only holds back the next one.
// Resumption is driven by a Clock timer, fires no earlier than the deadline and
// is also re-checked on every state-touching call. State callbacks fire only on
// real transitions.
//
// Every callback (Worker and state observer) runs on whichever goroutine is
// currently pumping the queue, one at a time. Calling Finish from inside the
// Worker is allowed and does not recurse: the pending dispatch is picked up by
// the pump loop already on the stack.
package workqueue
