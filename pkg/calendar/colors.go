package calendar

// tableau10 is the classic 10-color categorical palette the on-call sheet
// is shaded with.
var tableau10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Colors assigns a display color to every doctor, cycling the palette in
// index order.
func Colors(doctors int) []string {
	colors := make([]string, doctors)
	for doctor := range doctors {
		colors[doctor] = tableau10[doctor%len(tableau10)]
	}
	return colors
}
