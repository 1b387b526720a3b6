package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/sales-lead-scoring-service/internal/database"
	insightsservice "github.com/wso2/sales-lead-scoring-service/internal/insights/service"
	leadservice "github.com/wso2/sales-lead-scoring-service/internal/leads/service"
	"github.com/wso2/sales-lead-scoring-service/internal/leads/store"
	"github.com/wso2/sales-lead-scoring-service/internal/mlmodel"
	runsservice "github.com/wso2/sales-lead-scoring-service/internal/runs/service"
	scoringservice "github.com/wso2/sales-lead-scoring-service/internal/scoring/service"
	"github.com/wso2/sales-lead-scoring-service/internal/system/config"
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
	dbprovider "github.com/wso2/sales-lead-scoring-service/internal/system/database/provider"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
	"github.com/wso2/sales-lead-scoring-service/internal/system/managers"
)

const configFile = "config/deployment.yaml"
const schemaFile = "config/schema.sql"

func main() {
	serviceHome := getServiceHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file.
	serviceConfig, err := config.LoadConfig(serviceHome, configFile)
	if err != nil {
		log.GetLogger().Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize runtime configuration.
	if err := config.InitializeServiceRuntime(serviceHome, serviceConfig); err != nil {
		log.GetLogger().Fatal("Failed to initialize service runtime", log.Error(err))
	}

	// Initialize logger.
	if err := log.Init(serviceConfig.Log.LogLevel); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}
	logger := log.GetLogger()

	// Connect the customer data document store.
	docStore, err := database.ConnectDocumentStore(serviceConfig.DataSource)
	if err != nil {
		logger.Fatal("Failed to connect to the document store", log.Error(err))
	}

	// Initialize the run history database schema.
	initRunHistory(serviceHome)

	// Load the model artifact once; it is cached for the process lifetime.
	predictor, err := mlmodel.LoadXGBoostModel(filepath.Join(serviceHome, serviceConfig.Model.Path))
	if err != nil {
		logger.Fatal("Failed to load the model artifact", log.Error(err))
	}

	// Wire the services.
	leadRepo := store.NewLeadRepository(docStore.Database, serviceConfig.DataSource.InputCollection)
	scoredRepo := store.NewScoredLeadRepository(docStore.Database, serviceConfig.DataSource.OutputCollection)
	leadservice.InitLeadsService(leadRepo, scoredRepo,
		time.Duration(serviceConfig.Cache.LeadsTTLSeconds)*time.Second)
	insightsservice.InitInsightsService(leadservice.GetLeadsService())

	err = scoringservice.InitScoringService(predictor, leadservice.GetLeadsService(), scoredRepo,
		runsservice.GetRunsService(), serviceConfig.Model.Convention)
	if err != nil {
		logger.Fatal("Failed to initialize the scoring service", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", serviceConfig.Addr.Host, serviceConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}
	logger.Info("Sales lead scoring service started",
		log.String("addr", serverAddr),
		log.String("convention", serviceConfig.Model.Convention))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests", log.Error(err))
	}
}

// initRunHistory creates the run history table. Run bookkeeping is
// best-effort at startup: a missing database surfaces in /ready, not here.
func initRunHistory(serviceHome string) {
	logger := log.GetLogger()

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Warn("Run history database is not reachable", log.Error(err))
		return
	}
	defer dbClient.Close()

	if err := dbClient.InitDatabase(serviceHome, schemaFile); err != nil {
		logger.Warn("Failed to initialize the run history schema", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getServiceHome() string {

	// Parse the project directory from command line arguments.
	serviceHome := ""
	serviceHomeFlag := flag.String("serviceHome", "", "Path to the scoring service home directory")
	flag.Parse()

	if *serviceHomeFlag != "" {
		serviceHome = *serviceHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			log.GetLogger().Error("Failed to get current working directory", log.Error(dirErr))
		}
		serviceHome = dir
	}

	return serviceHome
}
