package todo

// Assignee is one of the fixed set of people a todo can be assigned to.
type Assignee string

const (
	AssigneeEmma      Assignee = "Emma"
	AssigneeSouphiane Assignee = "Souphiane"
)

// Assignees lists every valid assignee in display order. The first entry is
// the default for new todos.
var Assignees = []Assignee{AssigneeEmma, AssigneeSouphiane}

// DefaultAssignee is used when a todo is created without an assignee.
const DefaultAssignee = AssigneeEmma

// IsValid returns true if the assignee is one of the defined constants.
func (a Assignee) IsValid() bool {
	switch a {
	case AssigneeEmma, AssigneeSouphiane:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a Assignee) String() string {
	return string(a)
}
