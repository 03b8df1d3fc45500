package seed

import (
	"context"
	"log"
	"net/http"
	"time"

	"restring/db"
	"restring/models"
	"restring/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func fixtures(now time.Time) ([]interface{}, []interface{}, []interface{}) {
	paidAt := now.Add(-24 * time.Hour)

	bookings := []interface{}{
		models.Booking{
			ID:            utils.GenerateID(utils.IDLength),
			CustomerName:  "Maya Lindqvist",
			CustomerEmail: "maya@example.com",
			CustomerPhone: "+46 70 123 4567",
			RacketBrand:   "Yonex",
			RacketModel:   "Astrox 88D",
			StringName:    "BG80",
			StringTension: "12kg",
			PreferredDate: now.AddDate(0, 0, 3).Format("2006-01-02"),
			PreferredTime: "18:00",
			DropLocation:  "Shop",
			Status:        models.StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Booking{
			ID:                utils.GenerateID(utils.IDLength),
			CustomerName:      "Tom Okafor",
			CustomerEmail:     "tom@example.com",
			RacketBrand:       "Wilson",
			RacketModel:       "Blade 98",
			StringName:        "Luxilon ALU Power",
			StringTension:     "24kg",
			PreferredDate:     now.AddDate(0, 0, 1).Format("2006-01-02"),
			DropLocation:      "Club reception",
			Status:            models.StatusPaid,
			CreatedAt:         now.Add(-48 * time.Hour),
			UpdatedAt:         paidAt,
			PaymentReceivedAt: &paidAt,
		},
	}

	strings := []interface{}{
		models.StringItem{ID: utils.GenerateID(utils.IDLength), Name: "BG80", Sport: "badminton", Color: "yellow", Quantity: 14, Description: "Hard-hitting control string", CreatedAt: now, UpdatedAt: now},
		models.StringItem{ID: utils.GenerateID(utils.IDLength), Name: "BG65", Sport: "badminton", Color: "white", Quantity: 22, Description: "Durable all-rounder", CreatedAt: now, UpdatedAt: now},
		models.StringItem{ID: utils.GenerateID(utils.IDLength), Name: "Luxilon ALU Power", Sport: "tennis", Color: "silver", Quantity: 8, Description: "Tour polyester", CreatedAt: now, UpdatedAt: now},
		models.StringItem{ID: utils.GenerateID(utils.IDLength), Name: "Wilson NXT", Sport: "tennis", Color: "natural", Quantity: 11, Description: "Comfort multifilament", CreatedAt: now, UpdatedAt: now},
		models.StringItem{ID: utils.GenerateID(utils.IDLength), Name: "Ashaway SuperNick XL", Sport: "squash", Color: "white", Quantity: 6, Description: "Textured squash string", CreatedAt: now, UpdatedAt: now},
	}

	slots := []interface{}{
		models.AvailabilitySlot{ID: utils.GenerateID(utils.IDLength), Date: now.AddDate(0, 0, 1).Format("2006-01-02"), Time: "10:00", Location: "Shop", Available: true, CreatedAt: now},
		models.AvailabilitySlot{ID: utils.GenerateID(utils.IDLength), Date: now.AddDate(0, 0, 2).Format("2006-01-02"), Time: "14:00", Location: "Shop", Available: true, CreatedAt: now},
		models.AvailabilitySlot{ID: utils.GenerateID(utils.IDLength), Date: now.AddDate(0, 0, 3).Format("2006-01-02"), Time: "18:00", Location: "Club reception", Available: false, CreatedAt: now},
	}

	return bookings, strings, slots
}

// Seed wipes the three collections and repopulates fixture data.
// Admin-only; intended for demo and staging environments.
func Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, strings, slots := fixtures(time.Now())

	type target struct {
		name string
		docs []interface{}
	}
	counts := utils.M{}
	for _, t := range []target{
		{"bookings", bookings},
		{"strings", strings},
		{"availability", slots},
	} {
		coll := db.Collection(t.name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Printf("seed: clearing %s failed: %v", t.name, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
			return
		}
		if _, err := coll.InsertMany(ctx, t.docs); err != nil {
			log.Printf("seed: inserting %s failed: %v", t.name, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
			return
		}
		counts[t.name] = len(t.docs)
	}

	utils.RespondWithJSON(w, http.StatusOK, counts)
}
