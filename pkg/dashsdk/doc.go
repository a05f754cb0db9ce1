// Package dashsdk is a typed Go client for the OffMenu dashboard API.
//
// The SDKClient handles unauthenticated operations (requesting magic
// links, redeeming them, fetching the JWKS). Redeeming a magic link
// yields a Session, which carries the bearer token for everything else:
// invites, projects, tasks.
//
// SignInFlow models the post-authentication landing sequence a frontend
// runs: redeem a pending invite token if one was carried through the
// sign-in redirect, otherwise route the user by their memberships.
package dashsdk
