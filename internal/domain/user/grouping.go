package user

// ManagerGroup is one manager together with the users reporting to them.
type ManagerGroup struct {
	Manager User
	Members []User
}

// TeamGrouping is the admin view of the whole organization: users bucketed
// under their manager, with everyone unassigned collected separately.
type TeamGrouping struct {
	Managers   map[string]*ManagerGroup
	Unassigned []User
}

// GroupByManager partitions a flat user list by manager in a single pass.
//
// Every manager-role user gets a group entry, even with zero members. A
// user whose manager does not appear in the list still produces a group
// seeded from the joined manager fields on that user. Users without a
// manager, and managers themselves, never land in anyone's member list;
// users with no manager go to the unassigned bucket.
func GroupByManager(users []User) TeamGrouping {
	grouping := TeamGrouping{
		Managers:   make(map[string]*ManagerGroup),
		Unassigned: []User{},
	}

	for _, u := range users {
		if u.Role == RoleManager {
			if _, ok := grouping.Managers[u.ID]; !ok {
				grouping.Managers[u.ID] = &ManagerGroup{Manager: u, Members: []User{}}
			} else {
				// Group was seeded from a member's join fields; fill in the full row.
				grouping.Managers[u.ID].Manager = u
			}
			continue
		}

		if u.ManagerID != nil && *u.ManagerID != "" {
			group, ok := grouping.Managers[*u.ManagerID]
			if !ok {
				placeholder := User{ID: *u.ManagerID, Role: RoleManager}
				if u.ManagerName != nil {
					placeholder.Username = *u.ManagerName
				}
				group = &ManagerGroup{Manager: placeholder, Members: []User{}}
				grouping.Managers[*u.ManagerID] = group
			}
			group.Members = append(group.Members, u)
		} else {
			grouping.Unassigned = append(grouping.Unassigned, u)
		}
	}

	return grouping
}
