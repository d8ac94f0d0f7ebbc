package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/oncall/pkg/calendar"
	"github.com/limaJavier/oncall/pkg/model"
)

var validFormats = []string{"json", "csv", "xlsx"}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flag.String("format", "json", "Output format. Allowed values are: \"json\", \"csv\" and \"xlsx\", where \"json\" is the default")
	timeLimitPtr := flag.Float64("time", 10, "Time budget in seconds for the search, where 10 is the default")
	workersPtr := flag.Int("workers", 8, "Number of parallel search workers, where 8 is the default")
	seedPtr := flag.Int64("seed", -1, "Random seed for a reproducible search; a negative value leaves the search nondeterministic")
	validatePtr := flag.Bool("validate", false, "Validate the assignment present in the input file instead of building one")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr
	format := strings.ToLower(*formatPtr)
	validateOnly := *validatePtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if *timeLimitPtr <= 0 {
		log.Fatalf("time budget must be positive: %v", *timeLimitPtr)
	} else if *workersPtr < 1 {
		log.Fatalf("number of workers must be positive: %v", *workersPtr)
	}

	// Extract input
	input, names, assignment, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	if validateOnly {
		validate(input, assignment)
		return
	}

	config := model.Config{
		TimeLimit: time.Duration(*timeLimitPtr * float64(time.Second)),
		Workers:   *workersPtr,
	}
	if *seedPtr >= 0 {
		seed := *seedPtr
		config.Seed = &seed
	}

	// Build schedule
	scheduler := model.NewScheduler()
	start := time.Now()
	schedule, err := scheduler.Build(input, config)
	elapsed := time.Since(start)

	switch {
	case err == nil:
	case errors.Is(err, model.ErrInfeasible):
		fmt.Printf("No schedule satisfies the given rules (%v)\n", elapsed.Round(time.Millisecond))
		os.Exit(20)
	case errors.Is(err, model.ErrTimedOut):
		fmt.Printf("No verdict within the time budget (%v)\n", elapsed.Round(time.Millisecond))
		os.Exit(30)
	default:
		log.Fatalf("an error occurred during schedule construction: %v", err)
	}

	fmt.Printf("Schedule found in %v\n", elapsed.Round(time.Millisecond))
	for doctor, total := range calendar.Totals(schedule, input.NumDoctors) {
		fmt.Printf("%v: %v days\n", doctorName(names, doctor), total)
	}

	if err := write(outFile, format, schedule, names, input); err != nil {
		log.Fatalf("cannot write output: %v", err)
	}
}

func validate(input model.Input, assignment []int) {
	if assignment == nil {
		log.Fatal("the input file carries no assignment to validate")
	}

	violations, err := model.Validate(model.Schedule(assignment), input)
	if err != nil {
		log.Fatalf("cannot validate assignment: %v", err)
	}

	if len(violations) == 0 {
		fmt.Println("The assignment satisfies every rule")
		return
	}
	for _, violation := range violations {
		fmt.Printf("%v: %v\n", violation.Kind, violation.Description)
	}
	os.Exit(15)
}

func write(outFile, format string, schedule model.Schedule, names []string, input model.Input) error {
	out := os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "csv":
		return calendar.WriteCSV(out, schedule, names, input.StartWeekday)
	case "xlsx":
		return calendar.WriteXLSX(out, schedule, names, input.StartWeekday)
	default:
		days := make([]map[string]any, 0, len(schedule))
		for day, doctor := range schedule {
			days = append(days, map[string]any{
				"day":     day + 1,
				"weekday": time.Weekday((int(input.StartWeekday) + day) % 7).String(),
				"doctor":  doctorName(names, doctor),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(days)
	}
}

func doctorName(names []string, doctor int) string {
	if doctor < len(names) && names[doctor] != "" {
		return names[doctor]
	}
	return fmt.Sprintf("Doctor %v", doctor+1)
}
