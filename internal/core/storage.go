package core

// GroupListing is one group of the directory with its members.
type GroupListing struct {
	Group   string
	Members []string
}

type Directory interface {
	Add(group, member string)
	List(group string) ([]string, error)
	ListAll() []GroupListing
}
