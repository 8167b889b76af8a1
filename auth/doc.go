// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the credential cookie carried by browser sessions.

# Credential Cookie

The cookie is named "token" and holds an opaque bearer token issued by the
backend on login. It is http-only, secure, same-site lax, and expires after
eight hours:

	auth.SetCredential(w, token)
	token, ok := auth.Credential(r)
	auth.ClearCredential(w)

The gateway never inspects or verifies the token. It forwards it to the
backend as an Authorization: Bearer header and lets the backend reject
stale or forged tokens.

# Token Extraction

Login backends return the token under accessToken or token depending on
version. TokenFromLoginBody tries both:

	token := auth.TokenFromLoginBody(body)

An empty result means the login response carried no token; the cookie is
simply not set in that case and the response envelope is returned as-is.
*/
package auth
