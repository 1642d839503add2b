package catalog

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce entre eventos do mesmo arquivo; editores costumam gravar em
// múltiplas operações
const watchDebounce = 250 * time.Millisecond

// Watcher observa o arquivo de catálogo e recarrega o serviço quando o
// conteúdo muda em disco
type Watcher struct {
	service *Service
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// NewWatcher cria e inicia um watcher sobre o arquivo do serviço
func NewWatcher(service *Service) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Observa o diretório porque renomes atômicos (write + rename) não
	// geram eventos no caminho antigo do arquivo
	if err := fsWatcher.Add(filepath.Dir(service.path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		service: service,
		watcher: fsWatcher,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var pending *time.Timer
	target := filepath.Clean(w.service.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				if err := w.service.Reload(); err != nil {
					log.Printf("Falha ao recarregar catálogo após mudança em disco: %v", err)
					return
				}
				log.Printf("Catálogo recarregado (versão %d, %d nós)", w.service.Version(), w.service.Len())
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Erro do watcher de catálogo: %v", err)

		case <-w.done:
			if pending != nil {
				pending.Stop()
			}
			return
		}
	}
}

// Close encerra o watcher
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.watcher.Close()
}
