// Package database chứa logic khởi tạo MongoDB: kết nối, đảm bảo collections
// tồn tại và tạo indexes từ struct tags của models.
package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qurriahSam/elewa/internal/global"
	"github.com/qurriahSam/elewa/internal/logger"
)

// Connect mở kết nối tới MongoDB và ping để xác nhận kết nối thành công.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("không thể ping MongoDB: %w", err)
	}

	return client, nil
}

// EnsureDatabaseAndCollections đảm bảo rằng cơ sở dữ liệu và các collection cần thiết tồn tại.
// Nếu collection không tồn tại, nó sẽ được tạo mới.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.ServerConfig.MongoDB_DBName

	// Context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	collections := []string{}
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collectionName := range collections {
		exists := false
		for _, existingColl := range collList {
			if existingColl == collectionName {
				exists = true
				break
			}
		}
		if !exists {
			logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
			if err := db.CreateCollection(ctx, collectionName); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
			}
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// parseIndexTag phân tách tag index thành danh sách cấu hình.
// Mỗi cấu hình phân cách bởi ';', trong một cấu hình các tùy chọn phân cách bởi ','.
// Ví dụ: `index:"single:1;compound:milestone_org_unique,unique"`
func parseIndexTag(tag string) []map[string]string {
	parts := strings.Split(tag, ";")
	result := []map[string]string{}

	for _, part := range parts {
		subParts := strings.Split(part, ",")
		entry := map[string]string{}
		for _, subPart := range subParts {
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}

	return result
}

// CreateIndexes tạo indexes cho collection dựa trên `index` struct tags của model.
// Hỗ trợ: single (1/-1), unique, text và compound (gộp nhiều field theo tên index).
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.GetAppLogger()
	log.Debugf("Bắt đầu xử lý index cho collection: %s", collection.Name())

	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	indexModels := []mongo.IndexModel{}
	compoundKeys := map[string]bson.D{}
	compoundUnique := map[string]bool{}
	compoundOrder := []string{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, cfg := range parseIndexTag(tag) {
			if _, ok := cfg["text"]; ok {
				indexModels = append(indexModels, mongo.IndexModel{
					Keys: bson.D{{Key: bsonField, Value: "text"}},
				})
				continue
			}

			if name, ok := cfg["compound"]; ok {
				if _, exists := compoundKeys[name]; !exists {
					compoundOrder = append(compoundOrder, name)
				}
				compoundKeys[name] = append(compoundKeys[name], bson.E{Key: bsonField, Value: 1})
				if _, uniq := cfg["unique"]; uniq {
					compoundUnique[name] = true
				}
				continue
			}

			if dir, ok := cfg["single"]; ok {
				order := 1
				if dir == "-1" {
					order = -1
				}
				opts := options.Index()
				if _, uniq := cfg["unique"]; uniq {
					opts.SetUnique(true)
				}
				indexModels = append(indexModels, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: order}},
					Options: opts,
				})
				continue
			}

			if _, ok := cfg["unique"]; ok {
				indexModels = append(indexModels, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: 1}},
					Options: options.Index().SetUnique(true),
				})
			}
		}
	}

	// Gộp các compound indexes theo thứ tự khai báo field trong struct
	for _, name := range compoundOrder {
		opts := options.Index().SetName(name)
		if compoundUnique[name] {
			opts.SetUnique(true)
		}
		indexModels = append(indexModels, mongo.IndexModel{
			Keys:    compoundKeys[name],
			Options: opts,
		})
	}

	if len(indexModels) == 0 {
		return nil
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("không thể tạo index cho collection %s: %w", collection.Name(), err)
	}
	log.Infof("Đã tạo %d index cho collection: %s", len(indexModels), collection.Name())
	return nil
}
