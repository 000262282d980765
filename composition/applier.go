package composition

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iw2rmb/compose/document"
)

// ApplyMutations writes every buffered mutation into state and commits the
// result as a single insert-characters history entry.
//
// Mutations are applied one at a time against a threaded state, so later
// keys resolve against leaf ranges already shifted by earlier replacements.
// Each touched block is registered with syncer, and syncer is asked to
// resync once all mutations are in. Undo of the returned state restores the
// content and selection state had before the composition.
func ApplyMutations(state *document.State, mutations *Mutations, syncer BlockSyncer, opt Options) *document.State {
	opt = normalizeOptions(opt)
	log := opt.Logger

	cur := state
	content := state.Content()
	mutations.Each(func(key, text string) {
		target, err := ResolveTarget(key, cur)
		if err != nil {
			if errors.Is(err, ErrSkip) {
				log.Debug("composition: skipping mutation", slog.String("key", key), slog.Any("reason", err))
				return
			}
			if opt.Strict {
				panic(&InvariantError{Op: "ApplyMutations", Msg: fmt.Sprintf("cannot apply mutation %q: %v", key, err)})
			}
			log.Warn("composition: dropping mutation", slog.String("key", key), slog.Any("err", err))
			return
		}

		content = document.ReplaceText(content, target.Range, text, target.Style, target.EntityKey)
		syncer.RegisterDesynchronizedBlock(target.BlockKey)
		cur = cur.WithContent(content)
		log.Debug("composition: applied mutation",
			slog.String("key", key),
			slog.Int("start", target.Start),
			slog.Int("end", target.End),
			slog.String("text", text),
		)
	})

	syncer.ResyncDesynchronizedBlocks()

	if content == state.Content() {
		return state
	}
	content = content.WithSelections(state.Selection(), content.SelectionAfter())
	return state.Push(content, document.ChangeInsertCharacters)
}
