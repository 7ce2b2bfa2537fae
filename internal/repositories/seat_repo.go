package repositories

import (
	"database/sql"
	"fmt"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
)

type SeatRepo struct {
	DB *sql.DB
}

func (r SeatRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CountByTrain reports how many catalog seats a train already has.
func (r SeatRepo) CountByTrain(trainID int64) (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM seats WHERE train_id = ?`, trainID).Scan(&count)
	return count, err
}

// ListByTrain returns the persisted seat catalog of a train in coach/row
// order.
func (r SeatRepo) ListByTrain(trainID int64) ([]models.Seat, error) {
	rows, err := r.db().Query(`
		SELECT id, train_id, coach, seat_number, seat_type, position
		FROM seats
		WHERE train_id = ?
		ORDER BY coach ASC, seat_number ASC
	`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.TrainID, &s.Coach, &s.SeatNumber, &s.SeatType, &s.Position); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GenerateCatalog inserts the fixed 2-coach, 6-row, 2-2 layout for a train:
// 48 rows, window/aisle by column, priority window seats on row 1.
func (r SeatRepo) GenerateCatalog(trainID int64) (int, error) {
	inserted := 0
	for _, coach := range []string{"A", "B"} {
		for row := 1; row <= 6; row++ {
			for col, letter := range []string{"A", "B", "C", "D"} {
				seatType := models.SeatAisle
				position := models.PositionLeft
				if col == 0 || col == 3 {
					seatType = models.SeatWindow
				}
				if col >= 2 {
					position = models.PositionRight
				}
				if row == 1 && seatType == models.SeatWindow {
					seatType = models.SeatPriority
				}
				if _, err := r.db().Exec(`
					INSERT INTO seats (train_id, coach, seat_number, seat_type, position, created_at)
					VALUES (?, ?, ?, ?, ?, NOW())
				`, trainID, coach, fmt.Sprintf("%d%s", row, letter), string(seatType), string(position)); err != nil {
					return inserted, err
				}
				inserted++
			}
		}
	}
	return inserted, nil
}

// SeedAvailability creates seat_availability rows (all available) for every
// schedule of the train's routes that has none yet.
func (r SeatRepo) SeedAvailability(trainID int64) (int, error) {
	res, err := r.db().Exec(`
		INSERT INTO seat_availability (schedule_id, seat_id, is_available, created_at)
		SELECT sch.id, st.id, 1, NOW()
		FROM schedules sch
		JOIN routes rt ON rt.id = sch.route_id
		JOIN seats st ON st.train_id = rt.train_id
		WHERE rt.train_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM seat_availability sa
			WHERE sa.schedule_id = sch.id AND sa.seat_id = st.id
		  )
	`, trainID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
