package main

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindpulse/nowcast-api/api"
	"github.com/mindpulse/nowcast-api/external/indicator"
	"github.com/mindpulse/nowcast-api/schema"
	"github.com/mindpulse/nowcast-api/store"
)

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("nowcast")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017/?compressors=disabled")
	viper.SetDefault("mongo.database", "nowcast")
	viper.SetDefault("indicator.endpoint", "http://127.0.0.1:8600")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("trace", false)
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	initConfig()
	initLog()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}

	schema.NewMongoDBIndexer(connURI, database).IndexAll()

	mongoStore := store.NewMongoStore(client, database)
	defer mongoStore.Close()

	extractor := indicator.New(viper.GetString("indicator.endpoint"))

	server := api.NewServer(mongoStore, extractor, viper.GetBool("trace"))

	addr := viper.GetString("listen_addr")
	log.WithField("addr", addr).Info("starting nowcast api server")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
