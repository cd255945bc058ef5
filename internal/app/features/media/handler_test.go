package media_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/tripfolio/internal/app/features/media"
	albumstore "github.com/dalemusser/tripfolio/internal/app/store/albums"
	"github.com/dalemusser/tripfolio/internal/app/system/uploads"
	"github.com/dalemusser/tripfolio/internal/domain/models"
	"github.com/dalemusser/tripfolio/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func newRouter(t *testing.T, db *mongo.Database) (chi.Router, *uploads.Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	uploadStore, err := uploads.New(fs, "uploads", "/uploads")
	if err != nil {
		t.Fatalf("failed to build upload store: %v", err)
	}
	router := media.Routes(media.NewHandler(db, uploadStore, zap.NewNop()))
	return router, uploadStore, fs
}

// photoUpload builds a multipart request with one "photo" part.
func photoUpload(t *testing.T, contentType string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="pic.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write form part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleCreate_PhotoBecomesCover(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")

	router, _, _ := newRouter(t, db)
	req := testutil.NewJSONRequest(t, "POST", "/album/"+album.ID.Hex(), map[string]any{
		"type":    "photo",
		"content": "/uploads/one.jpg",
		"caption": "Alfama",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var created models.MediaItem
	testutil.DecodeJSON(t, rec, &created)
	if created.ID.IsZero() {
		t.Fatal("created item should have an ID")
	}

	stored, err := albumstore.New(db).GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CoverImageID == nil || *stored.CoverImageID != created.ID {
		t.Error("first photo should become the album cover")
	}
}

func TestHandleCreate_AlbumMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, _ := newRouter(t, db)

	req := testutil.NewJSONRequest(t, "POST", "/album/aaaaaaaaaaaaaaaaaaaaaaaa", map[string]any{
		"type":    "note",
		"content": "orphan",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleCreate_BadType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")

	router, _, _ := newRouter(t, db)
	req := testutil.NewJSONRequest(t, "POST", "/album/"+album.ID.Hex(), map[string]any{
		"type":    "video",
		"content": "x",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "photo or note")
}

func TestServeByAlbum_ListingOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")
	last := fx.CreateNote(ctx, album.ID, "last", 2)
	first := fx.CreatePhoto(ctx, album.ID, "/uploads/one.jpg", 0)
	middle := fx.CreateNote(ctx, album.ID, "middle", 1)

	router, _, _ := newRouter(t, db)
	req := testutil.NewRequest("GET", "/album/"+album.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var items []models.MediaItem
	testutil.DecodeJSON(t, rec, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != middle.ID || items[2].ID != last.ID {
		t.Errorf("items out of order: got %q, %q, %q",
			items[0].Content, items[1].Content, items[2].Content)
	}
}

func TestServeByAlbum_AlbumMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, _ := newRouter(t, db)

	req := testutil.NewRequest("GET", "/album/aaaaaaaaaaaaaaaaaaaaaaaa")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeItem_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, _ := newRouter(t, db)

	req := testutil.NewRequest("GET", "/aaaaaaaaaaaaaaaaaaaaaaaa")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleUpdate_CaptionAndSortOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")
	photo := fx.CreatePhoto(ctx, album.ID, "/uploads/one.jpg", 0)

	router, _, _ := newRouter(t, db)
	req := testutil.NewJSONRequest(t, "PUT", "/"+photo.ID.Hex(), map[string]any{
		"caption":   "Tram 28",
		"sortOrder": 5,
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var updated models.MediaItem
	testutil.DecodeJSON(t, rec, &updated)
	if updated.Caption != "Tram 28" || updated.SortOrder != 5 {
		t.Errorf("got caption %q sortOrder %d", updated.Caption, updated.SortOrder)
	}
	if updated.Content != "/uploads/one.jpg" {
		t.Errorf("content should be untouched, got %q", updated.Content)
	}
}

func TestHandleUpdate_CoverTurnedNoteFallsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")
	cover := fx.CreatePhoto(ctx, album.ID, "/uploads/one.jpg", 0)
	next := fx.CreatePhoto(ctx, album.ID, "/uploads/two.jpg", 1)
	if err := albumstore.New(db).SetCover(ctx, album.ID, &cover.ID); err != nil {
		t.Fatalf("SetCover: %v", err)
	}

	router, _, _ := newRouter(t, db)
	req := testutil.NewJSONRequest(t, "PUT", "/"+cover.ID.Hex(), map[string]any{
		"type":    "note",
		"content": "was a photo",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	stored, err := albumstore.New(db).GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CoverImageID == nil || *stored.CoverImageID != next.ID {
		t.Error("cover should fall back to the remaining photo")
	}
}

func TestHandleMove_UpdatesBothCovers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	source := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Source")
	target := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Target")
	photo := fx.CreatePhoto(ctx, source.ID, "/uploads/one.jpg", 0)
	if err := albumstore.New(db).SetCover(ctx, source.ID, &photo.ID); err != nil {
		t.Fatalf("SetCover: %v", err)
	}

	router, _, _ := newRouter(t, db)
	req := testutil.NewRequest("PUT", "/"+photo.ID.Hex()+"/move/"+target.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var moved models.MediaItem
	testutil.DecodeJSON(t, rec, &moved)
	if moved.AlbumID != target.ID {
		t.Error("moved item should carry the target album ID")
	}

	src, err := albumstore.New(db).GetByID(ctx, source.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if src.CoverImageID != nil {
		t.Error("source cover should be cleared")
	}
	dst, err := albumstore.New(db).GetByID(ctx, target.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if dst.CoverImageID == nil || *dst.CoverImageID != photo.ID {
		t.Error("target should adopt the moved photo as cover")
	}
}

func TestHandleMove_TargetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")
	photo := fx.CreatePhoto(ctx, album.ID, "/uploads/one.jpg", 0)

	router, _, _ := newRouter(t, db)
	req := testutil.NewRequest("PUT", "/"+photo.ID.Hex()+"/move/aaaaaaaaaaaaaaaaaaaaaaaa")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleDelete_CoverFallsBackToNextPhoto(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")
	cover := fx.CreatePhoto(ctx, album.ID, "/uploads/one.jpg", 0)
	next := fx.CreatePhoto(ctx, album.ID, "/uploads/two.jpg", 1)
	if err := albumstore.New(db).SetCover(ctx, album.ID, &cover.ID); err != nil {
		t.Fatalf("SetCover: %v", err)
	}

	router, _, _ := newRouter(t, db)
	req := testutil.NewRequest("DELETE", "/"+cover.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	stored, err := albumstore.New(db).GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CoverImageID == nil || *stored.CoverImageID != next.ID {
		t.Error("cover should fall back to the next photo")
	}
}

func TestHandleDelete_RemovesUploadedFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trip := fx.CreateTrip(ctx, "Lisbon Weekend")
	album := fx.CreateAlbum(ctx, trip.ID, models.TripRelation(), "Street Shots")

	router, uploadStore, fs := newRouter(t, db)

	info, err := uploadStore.Save("pic.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	photo := fx.CreatePhoto(ctx, album.ID, info.URL, 0)

	req := testutil.NewRequest("DELETE", "/"+photo.ID.Hex())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	exists, err := afero.Exists(fs, "uploads/"+info.Name)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("uploaded file should be removed with the photo item")
	}
}

func TestHandleUpload_StoresPhoto(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, fs := newRouter(t, db)

	payload := []byte("jpeg bytes")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, photoUpload(t, "image/jpeg", payload))

	rec.AssertStatus(t, http.StatusCreated)

	var info uploads.UploadInfo
	testutil.DecodeJSON(t, rec, &info)
	if info.Size != int64(len(payload)) {
		t.Errorf("size: got %d, want %d", info.Size, len(payload))
	}
	if info.URL == "" || info.Name == "" {
		t.Fatalf("incomplete upload info: %+v", info)
	}

	exists, err := afero.Exists(fs, "uploads/"+info.Name)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("uploaded file should be on disk")
	}
}

func TestHandleUpload_RejectsNonImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, _ := newRouter(t, db)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, photoUpload(t, "text/plain", []byte("not an image")))

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleUpload_MissingFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, _ := newRouter(t, db)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}
	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}
