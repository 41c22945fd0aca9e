package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quickmart-dev/checkout-scheduler/internal/analytics"
	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
	"github.com/quickmart-dev/checkout-scheduler/internal/scheduler"
	"github.com/quickmart-dev/checkout-scheduler/internal/workload"
)

var (
	seed          int64
	morningRate   float64
	afternoonRate float64
	cashierCount  int
	timeout       time.Duration
	runs          int
)

var rootCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fabricates a day of supermarket traffic and schedules it",
	Long: `simulate fabricates a roster of cashiers and a stochastic stream of
arriving clients, solves the day's assignment problem and prints the
resulting timetable and KPIs. With --runs > 1 it repeats the experiment
over successive seeds and reports averages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runs <= 1 {
			_, err := runOnce(seed, true)
			return err
		}
		return runBatch()
	},
}

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "random seed for roster and workload generation")
	rootCmd.Flags().Float64Var(&morningRate, "morning-rate", 15, "Poisson arrival rate of the morning shift")
	rootCmd.Flags().Float64Var(&afternoonRate, "afternoon-rate", 15, "Poisson arrival rate of the afternoon shift")
	rootCmd.Flags().IntVar(&cashierCount, "cashiers", 4, "number of cashiers in the fabricated roster")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "deadline for a single solve")
	rootCmd.Flags().IntVar(&runs, "runs", 1, "number of simulated days")
}

// fabricateRoster invents a plausible roster: faker names, at least one
// covered shift per cashier and effectiveness in [0.8, 1.2].
func fabricateRoster(count int, rng *rand.Rand) []domain.Cashier {
	fake := faker.NewWithSeed(rand.NewSource(rng.Int63()))

	cashiers := make([]domain.Cashier, 0, count)
	seen := make(map[string]bool)
	for len(cashiers) < count {
		name := fake.Person().FirstName()
		if seen[name] {
			name = fmt.Sprintf("%s %s", name, fake.Person().LastName())
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		morning, afternoon := true, true
		switch rng.Intn(3) {
		case 1:
			afternoon = false
		case 2:
			morning = false
		}

		cashiers = append(cashiers, domain.Cashier{
			Name:                    name,
			AvailableInTheMorning:   morning,
			AvailableInTheAfternoon: afternoon,
			EffectivenessAverage:    0.8 + 0.4*rng.Float64(),
		})
	}
	return cashiers
}

func runOnce(seed int64, verbose bool) (*analytics.Report, error) {
	rng := rand.New(rand.NewSource(seed))

	cashiers := fabricateRoster(cashierCount, rng)
	clients, err := workload.Generate(morningRate, afternoonRate, rng)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("the generated workload is empty; raise the arrival rates")
	}

	sched, err := scheduler.New(scheduler.DefaultParameters(), cashiers, clients)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries, err := sched.Solve(ctx)
	if err != nil {
		return nil, err
	}

	report, err := analytics.BuildReport(entries)
	if err != nil {
		return nil, err
	}

	if !verbose {
		return report, nil
	}

	fmt.Printf("seed %d: %d cashiers, %d clients, status %s, objective %d\n\n",
		seed, len(cashiers), len(clients), sched.Status(), sched.Objective())

	fmt.Println("timetable:")
	for _, row := range domain.Timetable(entries) {
		fmt.Printf("  %-24s client %3d  %4d -> %4d  (%2d min, %2d products)\n",
			row.CashierName, row.ClientID, row.Start, row.End, row.Duration, row.Products)
	}

	fmt.Println("\nkpis:")
	fmt.Printf("  service level        %.1f\n", report.ServiceLevel)
	fmt.Printf("  avg queue waiting    %.1f min\n", report.AvgQueueWaitingTime)
	fmt.Printf("  avg time in system   %.1f min\n", report.AvgProcessingTime)
	fmt.Printf("  occupancy (avgFree)  %.1f\n", report.AvgFreeTime)
	for _, slice := range report.EfficiencyData {
		fmt.Printf("  efficiency %-9s  %.1f%%\n", slice.Label, slice.Value)
	}
	return report, nil
}

func runBatch() error {
	bar := progressbar.Default(int64(runs), "simulating days")

	var reports []*analytics.Report
	for i := 0; i < runs; i++ {
		report, err := runOnce(seed+int64(i), false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed %d: %v\n", seed+int64(i), err)
		} else {
			reports = append(reports, report)
		}
		_ = bar.Add(1)
	}

	fmt.Printf("\n%d/%d days scheduled successfully\n", len(reports), runs)
	if len(reports) == 0 {
		return nil
	}

	mean := averageKPIs(reports)
	fmt.Println("\nmean kpis over the scheduled days:")
	fmt.Printf("  service level        %.2f\n", mean.ServiceLevel)
	fmt.Printf("  avg queue waiting    %.2f min\n", mean.AvgQueueWaitingTime)
	fmt.Printf("  avg time in system   %.2f min\n", mean.AvgProcessingTime)
	fmt.Printf("  occupancy (avgFree)  %.2f\n", mean.AvgFreeTime)
	return nil
}

// averageKPIs means the scalar KPIs over a batch of day reports.
func averageKPIs(reports []*analytics.Report) analytics.Report {
	var mean analytics.Report
	for _, r := range reports {
		mean.ServiceLevel += r.ServiceLevel
		mean.AvgQueueWaitingTime += r.AvgQueueWaitingTime
		mean.AvgProcessingTime += r.AvgProcessingTime
		mean.AvgFreeTime += r.AvgFreeTime
	}
	n := float64(len(reports))
	mean.ServiceLevel /= n
	mean.AvgQueueWaitingTime /= n
	mean.AvgProcessingTime /= n
	mean.AvgFreeTime /= n
	return mean
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
