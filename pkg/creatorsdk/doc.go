/*
Package creatorsdk is a Go client for the creatordesk API.

# Overview

A Client talks to the public endpoints and opens workspaces. Every workspace
operation goes through a Session, which carries the bearer token returned when
the workspace was created:

	client := creatorsdk.NewClient("http://localhost:8080")

	session, err := client.CreateSession(ctx)
	if err != nil {
		return err
	}

	invites, err := session.ListInvites(ctx)
	updated, err := session.UpdateInviteStatus(ctx, invites.Invites[0].ID, "accepted")

A token kept from an earlier run can be reused with NewSessionFromToken.

# Money

Amounts travel as decimal strings ("1500.00") in both directions so no
precision is lost to floating point.

# Error Handling

Non-2xx responses become *APIError values carrying the HTTP status and the
error code from the body:

	_, err := session.UpdateInviteStatus(ctx, "1", "completed")
	if creatorsdk.IsCode(err, creatorsdk.ErrorCodeInvalidTransition) {
		// the invite cannot move there from its current status
	}

# Thread Safety

Client and Session are safe for concurrent use.
*/
package creatorsdk
