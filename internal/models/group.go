package models

// Group represents a named set of users that expenses are filed under.
// The member list is fixed at creation; it may contain the same user more than once.
type Group struct {
	// ID is the caller-assigned identifier. Creating a group with an existing ID
	// replaces the earlier group.
	ID int

	// Name is the display name of the group (e.g., "Trip", "Roommates").
	Name string

	// Members are the users in this group, in the order they were given.
	Members []*User
}

// MemberIDs returns the IDs of the group members in order.
func (g Group) MemberIDs() []int {
	ids := make([]int, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}
