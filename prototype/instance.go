package prototype

import "fmt"

// Instance is a response buffer copied from a category template.
// Callers own the Instance and may mutate it freely.
type Instance struct {
	// SeqNum is the caller-assigned sequence number. Zero until set.
	SeqNum int64

	// Category is the outcome kind the instance was cloned from.
	Category Category

	// Threshold is the failure threshold resolved for Category at build time.
	Threshold int
}

// String renders the instance as "seq_num: N category: NAME threshold: T".
func (i *Instance) String() string {
	return fmt.Sprintf("seq_num: %d category: %s threshold: %d", i.SeqNum, i.Category, i.Threshold)
}

// template is the immutable baseline for one category.
type template struct {
	category  Category
	threshold int
}

// clone allocates a new Instance carrying the template's values.
func (t template) clone() *Instance {
	return &Instance{
		Category:  t.category,
		Threshold: t.threshold,
	}
}
