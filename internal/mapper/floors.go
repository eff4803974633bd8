package mapper

import (
	"sort"

	"mudatlas.dev/internal/models"
)

// FilterByFloor returns the rooms whose Z equals floor, in input order.
// The result is never nil.
func FilterByFloor(rooms []models.RoomRef, floor int) []models.RoomRef {
	filtered := make([]models.RoomRef, 0, len(rooms))
	for _, room := range rooms {
		if room.Z == floor {
			filtered = append(filtered, room)
		}
	}
	return filtered
}

// ZoneFloors returns the distinct floors of a zone, highest first.
// A zone without rooms has only the ground floor.
func ZoneFloors(rooms []models.RoomRef) []int {
	if len(rooms) == 0 {
		return []int{0}
	}

	seen := make(map[int]struct{})
	floors := make([]int, 0)
	for _, room := range rooms {
		if _, ok := seen[room.Z]; ok {
			continue
		}
		seen[room.Z] = struct{}{}
		floors = append(floors, room.Z)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(floors)))
	return floors
}

// NearestFloor picks the floor closest to current. Ties keep input order.
func NearestFloor(floors []int, current int) (int, bool) {
	if len(floors) == 0 {
		return 0, false
	}

	best := floors[0]
	for _, f := range floors[1:] {
		if abs(f-current) < abs(best-current) {
			best = f
		}
	}
	return best, true
}
