package booking

import "fmt"

// The studio takes bookings in half-hour slots over a morning block and an
// afternoon block, with a midday break in between.
var slotTemplate = buildTemplate()

func buildTemplate() []string {
	var slots []string
	addBlock := func(startH, startM, endH, endM int) {
		h, m := startH, startM
		for h < endH || (h == endH && m <= endM) {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
			m += 30
			if m == 60 {
				h, m = h+1, 0
			}
		}
	}
	addBlock(9, 0, 11, 0)
	addBlock(13, 0, 18, 0)
	return slots
}

// SlotTemplate returns the full daily slot sequence.
func SlotTemplate() []string {
	out := make([]string, len(slotTemplate))
	copy(out, slotTemplate)
	return out
}

// availableSlots returns the template minus booked times, in template order.
// A closed date yields no slots at all.
func availableSlots(closed bool, bookedTimes []string) []string {
	if closed {
		return []string{}
	}
	taken := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		taken[t] = true
	}
	free := make([]string, 0, len(slotTemplate))
	for _, t := range slotTemplate {
		if !taken[t] {
			free = append(free, t)
		}
	}
	return free
}

func isTemplateSlot(t string) bool {
	for _, s := range slotTemplate {
		if s == t {
			return true
		}
	}
	return false
}
