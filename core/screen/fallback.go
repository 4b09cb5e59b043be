// ABOUTME: Fallback content shown when a design screen cannot be mounted
// ABOUTME: Static markup with no external references, renders without network access

package screen

import (
	"designmount/core/domain"
)

// FallbackContent replaces the design document when acquisition or injection
// fails. It has no external asset references, so it renders in any
// environment, and it carries its own alert region so the failure stays
// accessible. The hosting shell may render an additional indicator alongside
// it, never instead of it.
const FallbackContent domain.TrustedMarkup = `<div class="design-screen design-screen--fallback">
  <div class="design-screen__notice" role="alert">
    <h2>Design preview unavailable</h2>
    <p>The design document could not be loaded. The screen will render normally once it is reachable again.</p>
  </div>
</div>`
