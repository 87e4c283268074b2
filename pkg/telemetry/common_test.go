package telemetry

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"factorydash.xyz/telemetry-engine/pkg/db"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockAlert, useMockDerived, useMockProduction bool) (
	*gomock.Controller,
	*Engine,
	*MockIAlert,
	*MockIDerived,
	*MockIProduction,
) {
	ctrl := gomock.NewController(t)

	mockIAlert := NewMockIAlert(ctrl)
	mockIDerived := NewMockIDerived(ctrl)
	mockIProduction := NewMockIProduction(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engine := NewEngine(*dbInstance)
	engine.WithDefaultServices()

	if useMockAlert {
		engine.Alert = mockIAlert
	}
	if useMockDerived {
		engine.Derived = mockIDerived
	}
	if useMockProduction {
		engine.Production = mockIProduction
	}

	return ctrl, engine, mockIAlert, mockIDerived, mockIProduction
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
