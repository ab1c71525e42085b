package reservation

// FindConflict returns the reservation with the lowest id on roomID whose slot
// overlaps slot, or nil when the slot is free. Soft-deleted reservations and
// the reservation identified by exclude are ignored.
func FindConflict(existing []*Reservation, roomID int64, slot TimeSlot, exclude *int64) *Reservation {
	var found *Reservation
	for _, r := range existing {
		if !blocks(r, roomID, exclude) || !r.timeSlot.Overlaps(slot) {
			continue
		}
		if found == nil || r.id < found.id {
			found = r
		}
	}
	return found
}

// HasConflict stops at the first overlapping reservation.
func HasConflict(existing []*Reservation, roomID int64, slot TimeSlot, exclude *int64) bool {
	for _, r := range existing {
		if blocks(r, roomID, exclude) && r.timeSlot.Overlaps(slot) {
			return true
		}
	}
	return false
}

func blocks(r *Reservation, roomID int64, exclude *int64) bool {
	if r == nil || r.IsDeleted() || r.placement.RoomID != roomID {
		return false
	}
	return exclude == nil || r.id != *exclude
}
