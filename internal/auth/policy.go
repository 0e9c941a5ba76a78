package auth

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionSeed   Action = "seed"

	// ActionManageGenres covers every write to the genre taxonomy.
	ActionManageGenres Action = "manage_genres"
)

// Resource is anything owned by a user. A nil Resource means the action targets
// the collection rather than a single record.
type Resource interface {
	OwnerLogin() string
}

// Policy decides whether user may perform action on resource.
type Policy func(action Action, resource Resource, user User) bool

// DefaultPolicy grants actions from role capabilities. Editing or deleting a
// record owned by someone else needs the *_others_* capability.
func DefaultPolicy(action Action, resource Resource, user User) bool {
	switch action {
	case ActionRead:
		return true
	case ActionCreate:
		return user.Has(CapEditPosts)
	case ActionEdit:
		return ownedCapability(resource, user, CapEditPosts, CapEditOthersPosts)
	case ActionDelete:
		return ownedCapability(resource, user, CapDeletePosts, CapDeleteOthersPosts)
	case ActionSeed:
		return user.Has(CapManageOptions)
	case ActionManageGenres:
		return user.Has(CapManageCategories)
	default:
		return false
	}
}

func ownedCapability(resource Resource, user User, own, others Capability) bool {
	if !user.Has(own) {
		return false
	}
	if resource == nil {
		return true
	}
	if !user.IsAnonymous() && resource.OwnerLogin() == user.Login {
		return true
	}
	return user.Has(others)
}
