package domain

// Entity is the capability shared by every independently persisted record:
// a unique, immutable id assigned at creation.
type Entity interface {
	EntityID() string
}
