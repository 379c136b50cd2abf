// Package inference implements a fixed set of ONNX Runtime sessions
// sharing one loaded model, dispatched round-robin so concurrent
// Predict calls don't serialize on a single session. Each Infer call
// is one session.Run() on the chosen session.
package inference

import (
	"fmt"
	"sync"
	"sync/atomic"

	ort "github.com/yalue/onnxruntime_go"

	"yolofeed/internal/yoloerr"
)

const (
	inputName  = "images"
	outputName = "output0"
)

// Pool owns a set of ONNX Runtime sessions over the same model file,
// each with its own pre-bound input/output tensor pair, so sessions can
// run concurrently without contending for a shared buffer.
type Pool struct {
	sessions []*instance
	next     atomic.Uint64

	numClasses int
	numAnchors int
}

type instance struct {
	mu      sync.Mutex
	session *ort.Session[float32]
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// NewPool initializes the ONNX Runtime environment and constructs n
// sessions against modelPath. numClasses and numAnchors describe the
// model's [1, 4+numClasses, numAnchors] output tensor shape.
func NewPool(modelPath string, n, numClasses, numAnchors int) (*Pool, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, yoloerr.New(yoloerr.InferenceError, "NewPool", fmt.Errorf("initialize onnxruntime environment: %w", err))
	}

	inputShape := ort.NewShape(1, 3, 640, 640)
	outputShape := ort.NewShape(1, int64(4+numClasses), int64(numAnchors))

	sessions := make([]*instance, 0, n)
	for i := 0; i < n; i++ {
		inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
		if err != nil {
			return nil, yoloerr.New(yoloerr.InferenceError, "NewPool", fmt.Errorf("alloc input tensor %d: %w", i, err))
		}
		outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
		if err != nil {
			return nil, yoloerr.New(yoloerr.InferenceError, "NewPool", fmt.Errorf("alloc output tensor %d: %w", i, err))
		}

		session, err := ort.NewSession[float32](modelPath,
			[]string{inputName}, []string{outputName},
			[]*ort.Tensor[float32]{inputTensor}, []*ort.Tensor[float32]{outputTensor})
		if err != nil {
			return nil, yoloerr.New(yoloerr.InferenceError, "NewPool", fmt.Errorf("create session %d: %w", i, err))
		}

		sessions = append(sessions, &instance{session: session, input: inputTensor, output: outputTensor})
	}

	return &Pool{sessions: sessions, numClasses: numClasses, numAnchors: numAnchors}, nil
}

// Infer copies tensorData into the next session (round-robin) input
// buffer, runs it, and returns a copy of the output tensor's data.
func (p *Pool) Infer(tensorData []float32) ([]float32, error) {
	idx := p.next.Add(1) % uint64(len(p.sessions))
	inst := p.sessions[idx]

	inst.mu.Lock()
	defer inst.mu.Unlock()

	copy(inst.input.GetData(), tensorData)
	if err := inst.session.Run(); err != nil {
		return nil, yoloerr.New(yoloerr.InferenceError, "Infer", err)
	}

	out := inst.output.GetData()
	result := make([]float32, len(out))
	copy(result, out)
	return result, nil
}

// NumClasses reports the class count the pool's sessions were built for.
func (p *Pool) NumClasses() int { return p.numClasses }

// NumAnchors reports the anchor count the pool's sessions were built for.
func (p *Pool) NumAnchors() int { return p.numAnchors }

// Close destroys every session and its tensors, then tears down the
// ONNX Runtime environment.
func (p *Pool) Close() {
	for _, inst := range p.sessions {
		inst.session.Destroy()
		inst.input.Destroy()
		inst.output.Destroy()
	}
	ort.DestroyEnvironment()
}
