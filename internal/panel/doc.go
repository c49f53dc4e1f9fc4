// Package panel holds the messaging page's view state and its transitions.
//
// The messaging page shows exactly one of four panels at a time: the
// conversation list, incoming friend requests, the add-friend search, or
// one conversation's history. Update is the only way to change State; it
// takes an event (a key press turned into an intent, or the result of a
// backend call) and returns the next State plus the Effects the caller
// must perform. Nothing in this package does I/O.
//
// Every backend call that fills a panel is tagged with a Token. A result
// whose token is no longer the newest one for a visible panel is dropped,
// so a slow reply can never paint over whatever the user is looking at now.
package panel
