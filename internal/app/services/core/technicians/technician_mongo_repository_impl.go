package technicians

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

type TechnicianMongoRepository struct {
	Collection *mongo.Collection
}

func NewTechnicianMongoRepository(db *mongo.Client, dbName string) contracts.TechnicianRepository {
	return &TechnicianMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTechnicians),
	}
}

func (r *TechnicianMongoRepository) FindByID(ctx context.Context, technicianID string) (*models.Technician, error) {
	var technician models.Technician
	err := r.Collection.FindOne(ctx, bson.M{"_id": technicianID}).Decode(&technician)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &technician, nil
}

func (r *TechnicianMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Technician, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return technicians, total, nil
}

func (r *TechnicianMongoRepository) Insert(ctx context.Context, technician *models.Technician) (*models.Technician, error) {
	now := time.Now().UTC()
	technician.CreatedAt = now
	technician.UpdatedAt = now
	_, err := r.Collection.InsertOne(ctx, technician)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return technician, nil
}

func (r *TechnicianMongoRepository) Update(ctx context.Context, technician *models.Technician) (*models.Technician, error) {
	technician.UpdatedAt = time.Now().UTC()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": technician.ID}, technician)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return technician, nil
}
