package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/oncall/pkg/model"
)

const (
	timeLimit = 30 * time.Second
	seed      = int64(1)
)

type ResultType int

const (
	solved ResultType = iota
	infeasible
	timeout
	failed
)

var resultTypes = map[ResultType]string{
	solved:     "solved",
	infeasible: "infeasible",
	timeout:    "timeout",
	failed:     "failed",
}

type Instance struct {
	Name  string
	Input model.Input
}

type BenchmarkResult struct {
	Instance Instance
	Workers  int
	Duration int64
	Result   ResultType
}

func main() {
	instances := getInstances()
	workerCounts := []int{1, 2, 4, 8}
	scheduler := model.NewScheduler()
	results := make([]BenchmarkResult, 0, len(instances)*len(workerCounts))

	for _, instance := range instances {
		for _, workers := range workerCounts {
			fmt.Printf("Benchmarking instance \"%v\" with %v workers\n", instance.Name, workers)

			duration, result := measure(scheduler, instance.Input, workers)

			results = append(results, BenchmarkResult{
				Instance: instance,
				Workers:  workers,
				Duration: duration,
				Result:   result,
			})
		}
	}

	toCsv(results)
}

func getInstances() []Instance {
	pairs := func(doctor int, days ...int) []model.DisallowedPair {
		disallowed := make([]model.DisallowedPair, 0, len(days))
		for _, day := range days {
			disallowed = append(disallowed, model.DisallowedPair{Doctor: doctor, Day: day - 1})
		}
		return disallowed
	}

	return []Instance{
		{
			Name: "three-doctors",
			Input: model.Input{
				NumDoctors:   3,
				DaysInMonth:  30,
				StartWeekday: time.Friday,
			},
		},
		{
			Name: "four-doctors-off-days",
			Input: model.Input{
				NumDoctors:   4,
				DaysInMonth:  31,
				StartWeekday: time.Sunday,
				Disallowed: append(append(
					pairs(0, 10, 11, 12),
					pairs(1, 1, 2)...),
					pairs(2, 25, 26, 27, 28)...),
			},
		},
		{
			Name: "five-doctors",
			Input: model.Input{
				NumDoctors:   5,
				DaysInMonth:  28,
				StartWeekday: time.Wednesday,
				Disallowed:   append(pairs(3, 5, 6, 7, 8, 9, 10), pairs(4, 20, 21)...),
			},
		},
	}
}

func measure(scheduler model.Scheduler, input model.Input, workers int) (duration int64, result ResultType) {
	randomSeed := seed
	config := model.Config{
		TimeLimit: timeLimit,
		Workers:   workers,
		Seed:      &randomSeed,
	}

	start := time.Now()
	_, err := scheduler.Build(input, config)
	duration = time.Since(start).Milliseconds()

	return duration, resultOf(err)
}

func resultOf(err error) ResultType {
	switch {
	case err == nil:
		return solved
	case errors.Is(err, model.ErrInfeasible):
		return infeasible
	case errors.Is(err, model.ErrTimedOut):
		return timeout
	default:
		return failed
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Instance", "Doctors", "Days", "Workers", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Instance.Name,
			fmt.Sprintf("%d", result.Instance.Input.NumDoctors),
			fmt.Sprintf("%d", result.Instance.Input.DaysInMonth),
			fmt.Sprintf("%d", result.Workers),
			fmt.Sprintf("%d", result.Duration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
