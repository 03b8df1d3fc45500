package availability

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"restring/db"
	"restring/models"
	"restring/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ListSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}
	if loc := r.URL.Query().Get("location"); loc != "" {
		filter["location"] = loc
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cur, err := db.AvailabilityCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("availability: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	defer cur.Close(ctx)

	slots := []models.AvailabilitySlot{}
	for cur.Next(ctx) {
		var s models.AvailabilitySlot
		if err := cur.Decode(&s); err != nil {
			log.Printf("availability: decode failed: %v", err)
			continue
		}
		slots = append(slots, s)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"slots": slots})
}

func CreateSlot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var s models.AvailabilitySlot
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if s.Date == "" || s.Time == "" || s.Location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	s.ID = utils.GenerateID(utils.IDLength)
	s.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.AvailabilityCollection.InsertOne(ctx, s); err != nil {
		log.Printf("availability: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"slot": s})
}

func DeleteSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid slot id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.AvailabilityCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Printf("availability: delete %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Slot not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}
