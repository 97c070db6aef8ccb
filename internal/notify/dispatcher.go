package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/logue/drop-compress-image/internal/model"
)

// DefaultAttemptTimeout bounds one notify attempt, including a permission
// prompt left unanswered.
const DefaultAttemptTimeout = 2 * time.Minute

// Dispatcher turns task and batch updates into notifications. Each finished
// single task or batch is announced at most once, in the background.
type Dispatcher struct {
	ctx      context.Context
	gateway  *Gateway
	onResult func(Result)
	timeout  time.Duration

	mu       sync.Mutex
	notified map[string]bool
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher sending through gateway. ctx bounds
// every notify attempt.
func NewDispatcher(ctx context.Context, gateway *Gateway) *Dispatcher {
	return &Dispatcher{
		ctx:      ctx,
		gateway:  gateway,
		timeout:  DefaultAttemptTimeout,
		notified: make(map[string]bool),
	}
}

// SetAttemptTimeout changes the per attempt timeout. Zero or less disables it.
func (d *Dispatcher) SetAttemptTimeout(timeout time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.timeout = timeout
}

// SetResultCallback registers a callback receiving every Result.
func (d *Dispatcher) SetResultCallback(callback func(Result)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onResult = callback
}

// OnTaskUpdate handles an update of a single task. Tasks that belong to a
// batch are reported through OnBatchUpdate instead. Canceled tasks are
// not announced.
func (d *Dispatcher) OnTaskUpdate(task *model.ConversionTask) {
	if task == nil || task.BatchID != "" {
		return
	}

	switch task.Status {
	case model.TaskStatusCompleted:
		if !d.claim(task.ID) {
			return
		}
		fileName, format := task.FileName(), task.Format
		d.dispatch(func(ctx context.Context) Result {
			return d.gateway.NotifyConversionComplete(ctx, fileName, format)
		})
	case model.TaskStatusError:
		if !d.claim(task.ID) {
			return
		}
		message := task.LastError
		if message == "" {
			message = task.FileName()
		}
		d.dispatch(func(ctx context.Context) Result {
			return d.gateway.NotifyError(ctx, message)
		})
	}
}

// OnBatchUpdate handles an update of a batch. Nothing is sent until every
// task in it is finished.
func (d *Dispatcher) OnBatchUpdate(batch *model.Batch) {
	if batch == nil || !batch.IsFinished() {
		return
	}
	completed := batch.CompletedCount()
	if completed == 0 && batch.FailedCount() == 0 {
		return
	}
	if !d.claim(batch.ID) {
		return
	}

	if completed == 0 {
		message := batchErrorMessage(batch)
		d.dispatch(func(ctx context.Context) Result {
			return d.gateway.NotifyError(ctx, message)
		})
		return
	}

	format := batch.Format
	d.dispatch(func(ctx context.Context) Result {
		return d.gateway.NotifyBatchComplete(ctx, completed, format)
	})
}

// Wait blocks until every dispatched notification has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) claim(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.notified[id] {
		return false
	}
	d.notified[id] = true
	return true
}

func (d *Dispatcher) dispatch(send func(ctx context.Context) Result) {
	d.mu.Lock()
	callback := d.onResult
	timeout := d.timeout
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx := d.ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		res := send(ctx)
		if callback != nil {
			callback(res)
		}
	}()
}

// batchErrorMessage picks the body for a batch where nothing converted: the
// first task error, else the failed file names, else the target format.
func batchErrorMessage(batch *model.Batch) string {
	var names []string
	for _, task := range batch.Tasks {
		if task.Status != model.TaskStatusError {
			continue
		}
		if task.LastError != "" {
			return task.LastError
		}
		if name := task.FileName(); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		return strings.Join(names, ", ")
	}
	return strings.ToUpper(batch.Format)
}
