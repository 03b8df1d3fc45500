package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"restring/db"
	"restring/mailer"
	"restring/models"
	"restring/mq"
	"restring/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return utils.GenerateID(utils.IDLength)
}

// applyUpdate merges a replacement payload onto the stored booking.
// Identity and creation time are immutable; moving to Paid stamps
// paymentReceivedAt once, and an existing stamp is never overwritten.
func applyUpdate(existing, incoming models.Booking, now time.Time) models.Booking {
	incoming.ID = existing.ID
	incoming.CreatedAt = existing.CreatedAt
	incoming.UpdatedAt = now
	incoming.PaymentReceivedAt = existing.PaymentReceivedAt
	if incoming.Status == models.StatusPaid && incoming.PaymentReceivedAt == nil {
		incoming.PaymentReceivedAt = &now
	}
	return incoming
}

// paidUpdate builds the field set for the explicit payment transition.
// Re-marking an already-paid booking keeps the original timestamp.
func paidUpdate(existing models.Booking, now time.Time) bson.M {
	set := bson.M{"status": models.StatusPaid, "updatedAt": now}
	if existing.PaymentReceivedAt == nil {
		set["paymentReceivedAt"] = now
	}
	return set
}

// ---------- List / Create ----------

func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := db.BookingsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("bookings: list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	defer cur.Close(ctx)

	bookings := []models.Booking{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			log.Printf("bookings: decode failed: %v", err)
			continue
		}
		bookings = append(bookings, b)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}

func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var b models.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if b.CustomerName == "" || b.CustomerEmail == "" || b.StringName == "" || b.PreferredDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	now := time.Now()
	b.ID = genID()
	b.Status = models.StatusPending
	b.CreatedAt = now
	b.UpdatedAt = now
	b.PaymentReceivedAt = nil

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		log.Printf("bookings: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	mq.Emit(context.Background(), mq.Event{Type: "booking-created", BookingID: b.ID, Status: b.Status})
	go mailer.SendBookingConfirmation(b)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"booking": b})
}

// ---------- By id ----------

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		log.Printf("bookings: get %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": b})
}

// UpdateBooking replaces the stored document. Setting status to Paid
// stamps paymentReceivedAt; an already-stamped timestamp is preserved.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var b models.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if b.CustomerName == "" || b.CustomerEmail == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		log.Printf("bookings: update lookup %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	b = applyUpdate(existing, b, time.Now())

	if _, err := db.BookingsCollection.ReplaceOne(ctx, bson.M{"id": id}, b); err != nil {
		log.Printf("bookings: replace %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	mq.Emit(context.Background(), mq.Event{Type: "booking-updated", BookingID: b.ID, Status: b.Status})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": b})
}

func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Printf("bookings: delete %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	mq.Emit(context.Background(), mq.Event{Type: "booking-deleted", BookingID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

// MarkPaid is the explicit payment transition. Idempotent: a booking
// already marked keeps its original payment timestamp.
func MarkPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		log.Printf("bookings: markpaid lookup %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": paidUpdate(existing, time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		log.Printf("bookings: markpaid %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	mq.Emit(context.Background(), mq.Event{Type: "booking-paid", BookingID: id, Status: models.StatusPaid})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": updated})
}
