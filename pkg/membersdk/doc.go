/*
Package membersdk provides the wire types and a client SDK for the barcommun
membership service.

# SDKClient vs Session

  - SDKClient: public operations (health probes, role catalog)
  - Session: operations made on behalf of a caller holding a bearer token

Tokens are issued by the identity provider, not by this service. Hand the
access token to the client to get a Session:

	client := membersdk.NewSDKClient("https://members.example.com")

	health, err := client.GetReadiness(ctx)

	session := client.NewSession(accessToken)
	me, err := session.WhoAmI(ctx)
	users, err := session.ListUsers(ctx, membersdk.Page{Limit: 50})

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status,
the error code and its description:

	_, err := session.GetUser(ctx, id)
	if membersdk.IsNotFound(err) {
		// ...
	}

A 403 lists the permissions the caller lacks in its description.
*/
package membersdk
