package main

import (
	"encoding/json"
	"log/slog"
	"os"
)

func main() {
	dropIndexes()

	createIndexes()

	getIndexes()
}

func dropIndexes() {
	switch conf.TaskConfigs.DropIndexes.FormDB {
	case DropIndexesModeAll:
		formDBService.DropIndexes(true)
	case DropIndexesModeDefaults:
		formDBService.DropIndexes(false)
	}
}

func createIndexes() {
	if conf.TaskConfigs.CreateIndexes.FormDB {
		formDBService.CreateDefaultIndexes()
	}
}

func getIndexes() {
	target := conf.TaskConfigs.GetIndexes.FormDB
	if target == "" || target == "false" {
		return
	}

	report := map[string]interface{}{}
	for _, instanceID := range conf.InstanceIDs {
		indexes, err := formDBService.GetIndexes(instanceID)
		if err != nil {
			slog.Error("Error reading indexes for form DB", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
			continue
		}
		report[instanceID] = indexes
	}

	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("Error marshalling index report", slog.String("error", err.Error()))
		return
	}

	if target == "true" {
		slog.Info("Current form DB indexes", slog.String("indexes", string(content)))
		return
	}

	if err := os.WriteFile(target, content, 0644); err != nil {
		slog.Error("Error writing index report", slog.String("file", target), slog.String("error", err.Error()))
	}
}
