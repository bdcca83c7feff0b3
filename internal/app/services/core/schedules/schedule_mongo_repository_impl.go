package schedules

import (
	"context"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleEntryMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleEntryMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleEntryRepository {
	return &ScheduleEntryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionScheduleEntries),
	}
}

func (r *ScheduleEntryMongoRepository) FindByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.Collection.FindOne(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

// FindByTechnicianAndRange returns the technician's entries whose half-open
// interval overlaps [rangeStart, rangeEnd), ordered ascending by start with
// _id as tiebreak. Cancelled entries are filtered out unless includeCancelled
// is set.
func (r *ScheduleEntryMongoRepository) FindByTechnicianAndRange(ctx context.Context, technicianID string, rangeStart, rangeEnd time.Time, includeCancelled bool) ([]models.ScheduleEntry, error) {
	filter := bson.M{
		"technicianId": technicianID,
		"start":        bson.M{"$lt": rangeEnd},
		"end":          bson.M{"$gt": rangeStart},
	}
	if !includeCancelled {
		filter["status"] = bson.M{"$ne": constvars.ScheduleStatusCancelled}
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "start", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

// FindUpcoming returns scheduled entries across all technicians starting in
// [rangeStart, rangeEnd). Used by the reminder worker.
func (r *ScheduleEntryMongoRepository) FindUpcoming(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.ScheduleEntry, error) {
	filter := bson.M{
		"status": constvars.ScheduleStatusScheduled,
		"start":  bson.M{"$gte": rangeStart, "$lt": rangeEnd},
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "start", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (r *ScheduleEntryMongoRepository) Insert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	_, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return entry, nil
}

func (r *ScheduleEntryMongoRepository) InsertMany(ctx context.Context, entries []models.ScheduleEntry) ([]models.ScheduleEntry, error) {
	now := time.Now().UTC()
	documents := make([]interface{}, 0, len(entries))
	for i := range entries {
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		documents = append(documents, entries[i])
	}

	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return entries, nil
}

func (r *ScheduleEntryMongoRepository) Update(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	entry.UpdatedAt = time.Now().UTC()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return entry, nil
}

func (r *ScheduleEntryMongoRepository) Delete(ctx context.Context, entryID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": entryID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
