package compliance

import "temp-compliance-backend/internal/model"

// VisibleRestaurants is the authorization policy deciding which restaurants
// a user may operate on: admins see every restaurant in their organization,
// other roles see their assigned restaurant, falling back to the first
// visible one when unassigned. Users without an organization are scoped to
// whatever restaurant set the caller supplied.
func VisibleRestaurants(u model.User, restaurants []model.Restaurant) []model.Restaurant {
	inOrg := make([]model.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if u.OrganizationID == "" || r.OrganizationID == u.OrganizationID {
			inOrg = append(inOrg, r)
		}
	}

	if u.Role == model.RoleAdmin {
		return inOrg
	}

	if u.RestaurantID != nil {
		for _, r := range inOrg {
			if r.ID == *u.RestaurantID {
				return []model.Restaurant{r}
			}
		}
	}

	if len(inOrg) > 1 {
		return inOrg[:1]
	}
	return inOrg
}
