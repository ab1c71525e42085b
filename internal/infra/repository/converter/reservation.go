package converter

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra/sqlc"
	"room-reservation/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	slot := res.TimeSlot()
	coffee := res.Coffee()
	return sqlc.CreateReservationParams{
		LocationID:     res.LocationID(),
		RoomID:         res.RoomID(),
		LocationName:   res.LocationName(),
		RoomName:       res.RoomName(),
		StartTime:      pgconv.TimeToPgtype(slot.Start()),
		EndTime:        pgconv.TimeToPgtype(slot.End()),
		Responsible:    res.Responsible(),
		Coffee:         coffee.Requested(),
		CoffeeQuantity: pgconv.IntPtrToPgtype(coffee.Quantity()),
		Description:    pgconv.StringPtrToPgtype(res.Description()),
		CreatedBy:      pgconv.StringPtrToPgtype(res.CreatedBy()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := res.TimeSlot()
	coffee := res.Coffee()
	return sqlc.UpdateReservationParams{
		ID:             res.ID(),
		LocationID:     res.LocationID(),
		RoomID:         res.RoomID(),
		LocationName:   res.LocationName(),
		RoomName:       res.RoomName(),
		StartTime:      pgconv.TimeToPgtype(slot.Start()),
		EndTime:        pgconv.TimeToPgtype(slot.End()),
		Responsible:    res.Responsible(),
		Coffee:         coffee.Requested(),
		CoffeeQuantity: pgconv.IntPtrToPgtype(coffee.Quantity()),
		Description:    pgconv.StringPtrToPgtype(res.Description()),
	}
}

func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		reservation.Placement{
			LocationID:   row.LocationID,
			LocationName: row.LocationName,
			RoomID:       row.RoomID,
			RoomName:     row.RoomName,
		},
		reservation.ReconstructTimeSlot(
			pgconv.TimeFromPgtype(row.StartTime),
			pgconv.TimeFromPgtype(row.EndTime),
		),
		row.Responsible,
		reservation.ReconstructCoffee(row.Coffee, pgconv.IntPtrFromPgtype(row.CoffeeQuantity)),
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.StringPtrFromPgtype(row.CreatedBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	)
}

func ReservationsFromRows(rows []sqlc.Reservations) []*reservation.Reservation {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = ReservationFromRow(row)
	}
	return result
}
