package lookup

import (
	"fmt"
	"strings"

	"github.com/fishub/lookupload/pkg/lookupload"
)

// Category is one named option list, stored as the document
// lookup_tables/<Name>.
type Category struct {
	Name   string
	Values []string
}

// table is in upload order. Document ids are read by the mobile app
// screens, so names must not change.
var table = []Category{
	{Name: "genderOptions", Values: []string{"Dişi", "Erkek", "Belli değil"}},
	{Name: "healthOptions", Values: []string{"Sağlıklı", "Hasta"}},
	{Name: "rodTypes", Values: []string{
		"Spinning", "Casting", "Fly", "Trolling", "Surf", "Ice", "Telescopic",
		"Travel", "Boat", "Jigging", "Baitcasting", "Centrepin", "Match",
		"Feeder", "Carp", "Ultra Light", "Heavy Duty", "Spod", "Float",
	}},
	{Name: "reelTypes", Values: []string{
		"Spinning Reel", "Baitcasting Reel", "Fly Reel", "Trolling Reel",
		"Spincast Reel", "Centrepin Reel", "Surf Reel", "Conventional Reel",
		"Electric Reel", "Inline Ice Reel",
	}},
	{Name: "lineThicknessOptions", Values: []string{
		"0.10 mm", "0.12 mm", "0.14 mm", "0.16 mm", "0.18 mm", "0.20 mm",
		"0.22 mm", "0.25 mm", "0.28 mm", "0.30 mm", "0.35 mm", "0.40 mm",
		"0.45 mm", "0.50 mm", "0.60 mm", "0.70 mm", "0.80 mm", "0.90 mm",
		"1.00 mm", "1.20 mm",
	}},
	{Name: "baitTypes", Values: []string{
		"Worm", "Grub", "Minnow", "Crankbait", "Spinnerbait", "Jerkbait",
		"Soft Plastic", "Jig", "Spoon", "Popper", "Swimbait", "Buzzbait",
		"Topwater", "Live Bait", "Cut Bait", "Dough Bait", "Artificial Fly",
		"Lure",
	}},
	{Name: "baitColors", Values: []string{
		"White", "Black", "Red", "Green", "Blue", "Yellow", "Pink", "Orange",
		"Purple", "Chartreuse", "Silver", "Gold", "Brown", "Glow",
		"Transparent", "Natural", "Firetiger", "Watermelon", "Crawfish",
	}},
	{Name: "baitWeights", Values: []string{
		"1g", "2g", "3g", "5g", "7g", "10g", "14g", "18g", "21g", "28g",
		"35g", "42g", "50g", "60g", "75g", "90g", "100g", "120g", "150g",
		"200g",
	}},
	{Name: "seaColors", Values: []string{
		"Blue", "Dark Blue", "Green", "Turquoise", "Brown", "Grey", "Clear",
		"Muddy", "Milky", "Deep Blue", "Emerald", "Teal", "Blackish",
	}},
	{Name: "moonPhases", Values: []string{
		"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
		"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
	}},
}

var index = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, c := range table {
		m[c.Name] = i
	}
	return m
}()

func (c Category) clone() Category {
	values := make([]string, len(c.Values))
	copy(values, c.Values)
	return Category{Name: c.Name, Values: values}
}

// All returns every category in upload order.
func All() []Category {
	out := make([]Category, len(table))
	for i, c := range table {
		out[i] = c.clone()
	}
	return out
}

// Get returns the named category.
func Get(name string) (Category, bool) {
	i, ok := index[name]
	if !ok {
		return Category{}, false
	}
	return table[i].clone(), true
}

// Names returns the category names in upload order.
func Names() []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories.
func Len() int {
	return len(table)
}

// Select returns the named categories in upload order, regardless of the
// order the names were given in. Duplicates are ignored. An empty selection
// returns every category.
func Select(names []string) ([]Category, error) {
	if len(names) == 0 {
		return All(), nil
	}

	wanted := make(map[int]bool, len(names))
	var unknown []string
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		wanted[i] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (valid: %s)",
			lookupload.ErrUnknownCategory, strings.Join(unknown, ", "), strings.Join(Names(), ", "))
	}

	out := make([]Category, 0, len(wanted))
	for i, c := range table {
		if wanted[i] {
			out = append(out, c.clone())
		}
	}
	return out, nil
}
