package catalog

// Activity is one bookable excursion from the static catalog. The chat core
// only resolves ids to titles/prices and derives type tags from selections;
// it never mutates the catalog.
type Activity struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Price       float64    `json:"price"`
	Duration    string     `json:"duration"`
	Types       []string   `json:"type"`
	Rating      float64    `json:"rating"`
	GroupSize   GroupRange `json:"group_size"`
}

type GroupRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type City struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Coordinates [2]float64 `json:"coordinates"` // latitude, longitude
}

// Activities returns the static ordered excursion list.
func Activities() []Activity {
	return activities
}

func Cities() []City {
	return cities
}

func ActivityByID(id string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func CityByID(id string) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// TypeUnion derives the deduplicated union of type tags across the given
// activity ids, preserving first-seen order. Unknown ids are skipped.
func TypeUnion(ids []string) []string {
	seen := make(map[string]bool)
	var union []string
	for _, id := range ids {
		a, ok := ActivityByID(id)
		if !ok {
			continue
		}
		for _, t := range a.Types {
			if !seen[t] {
				seen[t] = true
				union = append(union, t)
			}
		}
	}
	return union
}

// FilterByTypes keeps activities sharing at least one type with the given
// set. An empty set keeps everything.
func FilterByTypes(types []string) []Activity {
	if len(types) == 0 {
		return Activities()
	}
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	var out []Activity
	for _, a := range activities {
		for _, t := range a.Types {
			if wanted[t] {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func FilterByMaxPrice(maxPrice float64) []Activity {
	var out []Activity
	for _, a := range activities {
		if a.Price <= maxPrice {
			out = append(out, a)
		}
	}
	return out
}

func FilterByGroupSize(size int) []Activity {
	var out []Activity
	for _, a := range activities {
		if size >= a.GroupSize.Min && size <= a.GroupSize.Max {
			out = append(out, a)
		}
	}
	return out
}

// Filter combines the three predicates. maxPrice <= 0 means no price cap.
func Filter(types []string, maxPrice float64, groupSize int) []Activity {
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var out []Activity
	for _, a := range activities {
		if len(wanted) > 0 {
			match := false
			for _, t := range a.Types {
				if wanted[t] {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if maxPrice > 0 && a.Price > maxPrice {
			continue
		}
		if groupSize < a.GroupSize.Min || groupSize > a.GroupSize.Max {
			continue
		}
		out = append(out, a)
	}
	return out
}
