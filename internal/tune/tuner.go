// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tune

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"vellum.dev/x/vellum/internal/xlog"
)

// Config controls a tuning run: how many epochs to run, how the
// dataset is batched, and the Adam-style learning-rate schedule.
type Config struct {
	KPrecision int

	LearningRate     float64
	LearningDropRate float64
	LearningStepRate int

	MaxEpochs int
	BatchSize int

	// Step is the finite-difference perturbation applied to a param
	// when estimating its gradient.
	Step float64
}

// DefaultConfig mirrors the values the classical tuner this package is
// modeled on used for its own gradient descent.
func DefaultConfig() Config {
	return Config{
		KPrecision:       3,
		LearningRate:     1.0,
		LearningDropRate: 1.25,
		LearningStepRate: 25,
		MaxEpochs:        100,
		BatchSize:        16384,
		Step:             1.0,
	}
}

// Tuner fits Params against Dataset by gradient descent on the mean
// squared error between the sigmoid of the static evaluation and the
// recorded game result.
type Tuner struct {
	Config  Config
	Dataset []Entry
	Params  []Param

	K float64
}

// Tune runs the configured number of epochs, writing the error to stdout
// and a loss curve to tuning-error.html after every epoch, and the
// evaluation terms' final values to stdout once all epochs are done.
func (t *Tuner) Tune() error {
	n := len(t.Params)
	momentum := make([]float64, n)
	velocity := make([]float64, n)
	rate := t.Config.LearningRate

	fmt.Println("tune: computing optimal scaling constant K")
	k, err := t.computeK()
	if err != nil {
		return err
	}
	t.K = k
	fmt.Printf("tune: K = %v\n", t.K)

	var epochLabels []string
	var errorSeries []opts.LineData

	e, err := t.computeError(t.Dataset)
	if err != nil {
		return err
	}
	epochLabels = append(epochLabels, "0")
	errorSeries = append(errorSeries, opts.LineData{Value: e})
	t.plot(epochLabels, errorSeries)

	batches := len(t.Dataset) / t.Config.BatchSize
	if batches == 0 {
		batches = 1
	}

	for epoch := 0; epoch < t.Config.MaxEpochs; epoch++ {
		fmt.Printf("tune: epoch %d/%d\n", epoch+1, t.Config.MaxEpochs)

		bar := progressbar.NewOptions(batches,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("batch"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for b := 0; b < batches; b++ {
			batch := t.batch(b)
			grad, err := t.gradient(batch)
			if err != nil {
				return err
			}

			for i := range t.Params {
				g := grad[i]
				momentum[i] = momentum[i]*0.9 + g*0.1
				velocity[i] = velocity[i]*0.999 + g*g*0.001
				delta := momentum[i] * rate / math.Sqrt(1e-8+velocity[i])
				t.Params[i].Set(t.Params[i].Get() + int(math.Round(delta)))
			}

			_ = bar.Add(1)
		}
		_ = bar.Finish()

		e, err := t.computeError(t.Dataset)
		if err != nil {
			return err
		}
		fmt.Printf("tune: E = %v\n", e)
		xlog.Logger.Info().Int("epoch", epoch+1).Float64("error", e).Msg("tune: epoch complete")

		epochLabels = append(epochLabels, strconv.Itoa(epoch+1))
		errorSeries = append(errorSeries, opts.LineData{Value: e})
		t.plot(epochLabels, errorSeries)

		if epoch != 0 && epoch%t.Config.LearningStepRate == 0 {
			rate /= t.Config.LearningDropRate
		}
	}

	for _, p := range t.Params {
		fmt.Printf("%s = %d\n", p.Name, p.Get())
	}
	return nil
}

func (t *Tuner) batch(i int) []Entry {
	start := i * t.Config.BatchSize
	end := start + t.Config.BatchSize
	if end > len(t.Dataset) || t.Config.BatchSize >= len(t.Dataset) {
		end = len(t.Dataset)
	}
	return t.Dataset[start:end]
}

// gradient estimates dE/dParam for every tunable param via a central
// finite difference over batch, since vellum's evaluator has no
// coefficient trace to differentiate analytically.
func (t *Tuner) gradient(batch []Entry) ([]float64, error) {
	grad := make([]float64, len(t.Params))
	for i, p := range t.Params {
		base := p.Get()

		p.Set(base + int(t.Config.Step))
		ePlus, err := t.computeError(batch)
		if err != nil {
			return nil, err
		}

		p.Set(base - int(t.Config.Step))
		eMinus, err := t.computeError(batch)
		if err != nil {
			return nil, err
		}

		p.Set(base)
		grad[i] = (ePlus - eMinus) / (2 * t.Config.Step)
	}
	return grad, nil
}

func (t *Tuner) computeError(dataset []Entry) (float64, error) {
	var total float64
	for _, entry := range dataset {
		static, err := entry.staticEval()
		if err != nil {
			return 0, err
		}
		total += math.Pow(entry.Result-Sigmoid(t.K, static), 2)
	}
	return total / float64(len(dataset)), nil
}

// computeK coarsens-then-refines K over [0, 10] to minimise
// computeError, the same iterative-precision search the classical
// tuner used.
func (t *Tuner) computeK() (float64, error) {
	start, end, step := 0.0, 10.0, 1.0

	best, err := t.computeError(t.Dataset)
	if err != nil {
		return 0, err
	}
	origK := t.K

	for i := 0; i <= t.Config.KPrecision; i++ {
		current := start - step
		for current < end {
			current += step
			t.K = current
			e, err := t.computeError(t.Dataset)
			if err != nil {
				t.K = origK
				return 0, err
			}
			if e <= best {
				best, start = e, current
			}
		}

		end = start + step
		start = start - step
		step /= 10.0
	}

	return start, nil
}

func (t *Tuner) plot(labels []string, data []opts.LineData) {
	line := charts.NewLine()
	line.SetXAxis(labels).AddSeries("error", data)

	f, err := os.Create("tuning-error.html")
	if err != nil {
		xlog.Logger.Warn().Err(err).Msg("tune: could not open error plot file")
		return
	}
	defer f.Close()
	_ = line.Render(f)
}
