package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 извлекает целочисленный path-параметр из запроса
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid path parameter %q: %v", name, err)
	}
	return value, nil
}

// PathWeek извлекает пару (year, week) из path-параметров запроса
func PathWeek(r *http.Request) (int, int, error) {
	year, err := PathInt64(r, "year")
	if err != nil {
		return 0, 0, err
	}
	week, err := PathInt64(r, "week")
	if err != nil {
		return 0, 0, err
	}
	return int(year), int(week), nil
}
