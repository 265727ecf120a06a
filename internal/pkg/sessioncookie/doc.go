// Package sessioncookie signs and verifies the session-id cookie.
//
// The session id itself is opaque; signing only prevents a client from
// minting arbitrary sids. All session state stays server-side in redis.
package sessioncookie
