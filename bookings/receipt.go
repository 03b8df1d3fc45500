package bookings

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"restring/config"
	"restring/db"
	"restring/models"
	"restring/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var receiptSecret []byte

func Init(cfg config.Config) {
	receiptSecret = []byte(cfg.MediaSecret)
}

// signReceiptPayload returns "bookingID|timestamp|signature" for the
// pickup QR code. The shop scans it when the racket is collected.
func signReceiptPayload(bookingID string, issuedAt int64) string {
	data := fmt.Sprintf("%s|%d", bookingID, issuedAt)

	h := hmac.New(sha256.New, receiptSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// verifyReceiptPayload checks the signature on a scanned QR payload.
func verifyReceiptPayload(payload string) bool {
	i := bytes.LastIndexByte([]byte(payload), '|')
	if i < 0 {
		return false
	}
	data, sig := payload[:i], payload[i+1:]

	h := hmac.New(sha256.New, receiptSecret)
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(want), []byte(sig))
}

// Receipt renders a PDF job ticket for a booking, with a signed QR
// code the customer presents at pickup.
func Receipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		log.Printf("bookings: receipt lookup %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage error")
		return
	}

	qrPayload := signReceiptPayload(b.ID, time.Now().Unix())
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		log.Printf("bookings: receipt qr for %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Restringing Job Ticket")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", b.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", b.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Racket: %s %s", b.RacketBrand, b.RacketModel))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("String: %s @ %s", b.StringName, b.StringTension))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", b.Status))
	pdf.Ln(8)
	if b.PaymentReceivedAt != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Paid: %s", b.PaymentReceivedAt.Format("2006-01-02 15:04")))
		pdf.Ln(8)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("bookings: receipt pdf for %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+b.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
