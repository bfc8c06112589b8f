package suggest

// Static fallback used whenever the provider call fails or returns
// garbage. Buckets roughly follow what children can actually do.
func Fallback(childAge int) []Suggestion {
	switch {
	case childAge <= 5:
		return []Suggestion{
			{Name: "Put toys away", Description: "Pick up all toys and put them in the toy box", Gems: 2, Location: "Bedroom", Category: "organizing"},
			{Name: "Feed the pet", Description: "Fill the food bowl with a grown-up watching", Gems: 2, Location: "Kitchen", Category: "pets"},
			{Name: "Put books on the shelf", Description: "Stack your books back on the shelf", Gems: 1, Location: "Bedroom", Category: "organizing"},
			{Name: "Put dirty clothes in the hamper", Description: "Collect clothes from the floor into the hamper", Gems: 1, Location: "Bedroom", Category: "cleaning"},
			{Name: "Help set the table", Description: "Put out napkins and spoons for dinner", Gems: 2, Location: "Dining room", Category: "kitchen"},
			{Name: "Water a plant", Description: "Give one plant a small cup of water", Gems: 1, Location: "Living room", Category: "general"},
		}
	case childAge <= 9:
		return []Suggestion{
			{Name: "Make your bed", Description: "Straighten sheets and arrange pillows", Gems: 2, Location: "Bedroom", Category: "cleaning"},
			{Name: "Set the table", Description: "Put out plates, cups and cutlery for everyone", Gems: 3, Location: "Dining room", Category: "kitchen"},
			{Name: "Sort the laundry", Description: "Separate lights and darks into piles", Gems: 3, Location: "Laundry room", Category: "organizing"},
			{Name: "Sweep the kitchen floor", Description: "Sweep crumbs into the dustpan and empty it", Gems: 4, Location: "Kitchen", Category: "cleaning"},
			{Name: "Walk the dog with a parent", Description: "Hold the leash around the block", Gems: 4, Location: "Outside", Category: "pets"},
			{Name: "Water the garden", Description: "Water the flower beds with the watering can", Gems: 3, Location: "Garden", Category: "outdoor"},
			{Name: "Empty small trash bins", Description: "Collect the bathroom and bedroom bins", Gems: 3, Location: "House", Category: "cleaning"},
		}
	case childAge <= 12:
		return []Suggestion{
			{Name: "Load the dishwasher", Description: "Scrape plates and load them properly", Gems: 4, Location: "Kitchen", Category: "kitchen"},
			{Name: "Vacuum the living room", Description: "Vacuum the carpet and under the cushions", Gems: 5, Location: "Living room", Category: "cleaning"},
			{Name: "Take out the trash", Description: "Bag up the trash and bring the bins to the curb", Gems: 4, Location: "Outside", Category: "cleaning"},
			{Name: "Fold and put away laundry", Description: "Fold a full basket and sort it into drawers", Gems: 5, Location: "Bedroom", Category: "organizing"},
			{Name: "Rake the leaves", Description: "Rake the yard into piles and bag them", Gems: 6, Location: "Yard", Category: "outdoor"},
			{Name: "Clean the bathroom sink", Description: "Wipe the sink, counter and mirror", Gems: 4, Location: "Bathroom", Category: "cleaning"},
			{Name: "Pack your school bag", Description: "Get everything ready for tomorrow the night before", Gems: 2, Location: "Bedroom", Category: "organizing"},
		}
	default:
		return []Suggestion{
			{Name: "Mow the lawn", Description: "Mow the front and back yard", Gems: 10, Location: "Yard", Category: "outdoor"},
			{Name: "Cook a simple dinner", Description: "Plan and cook one family meal", Gems: 10, Location: "Kitchen", Category: "kitchen"},
			{Name: "Deep clean your room", Description: "Dust, vacuum and organize the whole room", Gems: 8, Location: "Bedroom", Category: "cleaning"},
			{Name: "Wash the car", Description: "Wash, rinse and dry the family car", Gems: 8, Location: "Driveway", Category: "outdoor"},
			{Name: "Do a full load of laundry", Description: "Wash, dry, fold and put away", Gems: 7, Location: "Laundry room", Category: "organizing"},
			{Name: "Clean out the fridge", Description: "Toss expired food and wipe the shelves", Gems: 6, Location: "Kitchen", Category: "kitchen"},
			{Name: "Babysit a younger sibling", Description: "Watch your sibling for an hour while a parent is home", Gems: 9, Location: "House", Category: "general"},
		}
	}
}
