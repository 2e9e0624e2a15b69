package fastcache

import "context"

// Mutation identifies what changed, not which component changed it, so
// any caller can invalidate correctly without knowing the cache topology
// of the code that reads the data.
type Mutation string

const (
	// MutationTeamMembership is a user joining or leaving a team, or a
	// role change within it.
	MutationTeamMembership Mutation = "teamMembership"
	// MutationLabCreated is a new lab added to a team.
	MutationLabCreated Mutation = "labCreated"
	// MutationLabDeleted is a lab removed from a team.
	MutationLabDeleted Mutation = "labDeleted"
	// MutationLabUpdated is any edit to an existing lab.
	MutationLabUpdated Mutation = "labUpdated"
	// MutationUserProfileUpdated is an edit to a user's profile.
	MutationUserProfileUpdated Mutation = "userProfileUpdated"
	// MutationWhiteboardUpdated is an edit to a user's whiteboard.
	MutationWhiteboardUpdated Mutation = "whiteboardUpdated"
)

// Invalidate removes exactly the entries made stale by the given mutation,
// leaving unrelated categories untouched. A missing teamID or userID skips
// the corresponding removal rather than erroring, and unknown mutation
// kinds are a no-op.
func (c *Cache) Invalidate(ctx context.Context, kind Mutation, teamID, userID string) {
	switch kind {
	case MutationTeamMembership:
		if userID != "" {
			c.Remove(ctx, "userRelationships", userID)
		}
		if teamID != "" {
			c.Remove(ctx, "teamLabs", teamID)
		}
	case MutationLabCreated, MutationLabDeleted, MutationLabUpdated:
		if teamID != "" {
			c.Remove(ctx, "teamLabs", teamID)
		}
	case MutationUserProfileUpdated:
		if userID != "" {
			c.Remove(ctx, "extendedUserData", userID)
		}
	case MutationWhiteboardUpdated:
		if userID != "" {
			c.Remove(ctx, "whiteboard", userID)
		}
	}
}
