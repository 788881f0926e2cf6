package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const DefaultSlotCount = 8

// BoxNumber identifies a physical dispenser compartment, starting at 1.
type BoxNumber int

// UnmarshalJSON accepts both 3 and "3"; the store echoes back whatever the
// client originally submitted.
func (b *BoxNumber) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		parsed, err := ParseBoxNumber(raw)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	}

	var value int
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fmt.Errorf("decode box number: %w", err)
	}
	*b = BoxNumber(value)
	return nil
}

func (b BoxNumber) String() string {
	return strconv.Itoa(int(b))
}

func ParseBoxNumber(raw string) (BoxNumber, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid box number %q", raw)
	}
	return BoxNumber(value), nil
}

type Pill struct {
	BoxNumber BoxNumber
	Name      string
	Schedule  Schedule
}

func (p Pill) Label() string {
	if strings.TrimSpace(p.Name) == "" {
		return "empty"
	}
	return p.Name
}

func (p Pill) Clone() Pill {
	p.Schedule = p.Schedule.Clone()
	return p
}

// ValidateNewPill checks the fields the client can judge on its own. Slot
// occupancy is left to the remote store.
func ValidateNewPill(name string, box BoxNumber, slotCount int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPill)
	}
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	if box < 1 || int(box) > slotCount {
		return fmt.Errorf("%w: box number must be between 1 and %d", ErrInvalidPill, slotCount)
	}

	return nil
}

func FreeBoxes(pills []Pill, slotCount int) []BoxNumber {
	occupied := make(map[BoxNumber]struct{}, len(pills))
	for _, pill := range pills {
		occupied[pill.BoxNumber] = struct{}{}
	}

	free := make([]BoxNumber, 0, slotCount)
	for box := BoxNumber(1); int(box) <= slotCount; box++ {
		if _, ok := occupied[box]; ok {
			continue
		}
		free = append(free, box)
	}
	return free
}

func SortPills(pills []Pill) {
	sort.Slice(pills, func(i, j int) bool {
		return pills[i].BoxNumber < pills[j].BoxNumber
	})
}
