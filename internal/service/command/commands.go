package command

// Add puts Member into Group. Named fields keep the two strings from being swapped.
type Add struct {
	Group  string
	Member string
}

type ListGroup struct {
	Group string
}

type ListAll struct{}

type Quit struct{}

// Invalid is any line the grammar does not accept.
type Invalid struct {
	Input string
}

func (Add) Name() string       { return "Add" }
func (ListGroup) Name() string { return "List" }
func (ListAll) Name() string   { return "All" }
func (Quit) Name() string      { return "Quit" }
func (Invalid) Name() string   { return "Invalid" }
