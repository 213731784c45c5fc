package trip

// Item is one entry in the packing checklist. Quantity is fixed at
// generation time; Completed and Notes are toggled afterwards by the
// user. Custom marks items the user added by hand.
type Item struct {
	Quantity  int    `json:"quantity"`
	Essential bool   `json:"essential"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
	Custom    bool   `json:"custom,omitempty"`
}

// Checklist maps category key to item name to item. Item names are the
// identity key within a category: writing an existing name overwrites
// the previous entry.
type Checklist map[string]map[string]*Item

// Set inserts or overwrites an item in a category, creating the
// category as needed.
func (c Checklist) Set(category, name string, item *Item) {
	if c[category] == nil {
		c[category] = make(map[string]*Item)
	}
	c[category][name] = item
}

// AddCustom adds a user-defined item to a category.
func (c Checklist) AddCustom(category, name string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.Set(category, name, &Item{Quantity: quantity, Custom: true})
}

// Toggle flips an item's completed state. Returns false if the item
// does not exist.
func (c Checklist) Toggle(category, name string) bool {
	item, ok := c[category][name]
	if !ok {
		return false
	}
	item.Completed = !item.Completed
	return true
}

// SetNote replaces an item's note. Returns false if the item does not
// exist.
func (c Checklist) SetNote(category, name, note string) bool {
	item, ok := c[category][name]
	if !ok {
		return false
	}
	item.Notes = note
	return true
}

// Progress reports how many items are checked off out of the total.
func (c Checklist) Progress() (completed, total int) {
	for _, items := range c {
		for _, item := range items {
			total++
			if item.Completed {
				completed++
			}
		}
	}
	return completed, total
}
