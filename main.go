package main

import (
	"context"
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MilesT98/Actify-2/api"
	"github.com/MilesT98/Actify-2/schema"
	"github.com/MilesT98/Actify-2/store"
	"github.com/MilesT98/Actify-2/utils"
)

func initConfig(file string) {
	viper.SetConfigFile(file)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("actify")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "actify")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("i18n.dir", "./i18n")

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("no config file loaded, using defaults and environment")
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "configuration file")
	flag.Parse()

	initConfig(configFile)
	initLog()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.WithError(err).Fatal("ping mongodb")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("create mongodb indexes")
	}

	if err := utils.LoadMessageFiles(viper.GetString("i18n.dir")); err != nil {
		log.WithError(err).Warn("load i18n message files")
	}

	mongoStore := store.NewMongoStore(client, database)
	server := api.NewServer(mongoStore, viper.GetBool("server.trace"))

	addr := viper.GetString("server.address")
	log.WithField("address", addr).Info("starting actify api server")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Fatal("api server stopped")
	}
}
