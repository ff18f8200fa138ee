package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type initializer interface {
	Init(storage *Storage)
}

type executor interface {
	Execute()
}

// Scheduler runs the registered systems in order, once per frame.
type Scheduler struct {
	storage     *Storage
	systems     []System
	queries     [][]executor
	systemStats []*systemStatsInternal
	commands    *Commands
	frames      uint64
}

func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Register appends a system and binds its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.queries = append(s.queries, s.initializeQueries(system))

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// initializeQueries calls Init on every exported Query or Singleton field and
// returns the queries that must be refreshed before the system runs.
func (s *Scheduler) initializeQueries(system System) []executor {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	v = v.Elem()

	var queries []executor
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(initializer)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if q, ok := binder.(executor); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

// Once executes every system for one frame and then flushes the frame's
// commands.
func (s *Scheduler) Once() {
	frame := &UpdateFrame{
		Index:    s.frames,
		Commands: s.commands,
		Storage:  s.storage,
	}
	s.frames++

	for i, system := range s.systems {
		start := time.Now()
		for _, q := range s.queries[i] {
			q.Execute()
		}
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush(s.storage)
}

// Run executes a frame every interval until the context is cancelled. before,
// if set, runs ahead of each frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, before func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if before != nil {
				before()
			}
			s.Once()
		}
	}
}

// Frames returns how many frames have been executed.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
