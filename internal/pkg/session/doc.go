// Package session implements the per-browser-session state store.
//
// Each browser session is identified by an opaque sid carried in a signed
// cookie. The state behind a sid is a single typed Session value stored in
// redis under one key, so the whole session expires together when its TTL
// elapses. Sessions are single-writer: only the request stream of one browser
// mutates its own session, so no locking is layered on top of redis.
package session
