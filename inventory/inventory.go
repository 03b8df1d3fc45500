package inventory

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// String inventory: independent of bookings, matched by name only.

func ListStrings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if sport := r.URL.Query().Get("sport"); sport != "" {
		filter["sport"] = sport
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	cur, err := db.StringsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("inventory: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	defer cur.Close(ctx)

	items := []models.StringItem{}
	for cur.Next(ctx) {
		var s models.StringItem
		if err := cur.Decode(&s); err != nil {
			log.Printf("inventory: decode failed: %v", err)
			continue
		}
		items = append(items, s)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"strings": items})
}

func CreateString(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var s models.StringItem
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if s.Name == "" || s.Sport == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if s.Quantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity cannot be negative")
		return
	}

	now := time.Now()
	s.ID = utils.GenerateID(utils.IDLength)
	s.CreatedAt = now
	s.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.StringsCollection.InsertOne(ctx, s); err != nil {
		log.Printf("inventory: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"string": s})
}

func GetString(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid string id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var s models.StringItem
	err := db.StringsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "String not found")
		return
	}
	if err != nil {
		log.Printf("inventory: get %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"string": s})
}

func UpdateString(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid string id")
		return
	}

	var s models.StringItem
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if s.Name == "" || s.Sport == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if s.Quantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity cannot be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.StringItem
	err := db.StringsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "String not found")
		return
	}
	if err != nil {
		log.Printf("inventory: update lookup %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now()

	if _, err := db.StringsCollection.ReplaceOne(ctx, bson.M{"id": id}, s); err != nil {
		log.Printf("inventory: replace %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"string": s})
}

func DeleteString(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid string id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.StringsCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Printf("inventory: delete %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "String not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}
