package oed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWordPage = `
<html>
  <body>
    <h1 class="headword-group">
      <span class="headword">shrapnel</span>
      <span class="pronunciation">/ˈʃɹapn(ə)l/</span>
      <span class="part-of-speech">noun</span>
    </h1>
    <section id="meaning_and_use">
      <div class="tab-content">
        <ol class="s4-list">
          <li class="item sense">
            <div class="item-enumerator">1.</div>
            <div class="definition">A type of artillery shell</div>
            <div class="daterange-container">1806–</div>
            <div class="tags">
              <a class="tag">military</a>
              <a class="tag">historical</a>
            </div>
            <ol class="quotation-container">
              <li class="quotation">
                <div class="quotation-date">1806</div>
                <blockquote class="quotation-text">The shells burst with great effect.</blockquote>
                <cite class="citation-text">Military Journal</cite>
              </li>
            </ol>
          </li>
        </ol>
      </div>
    </section>
  </body>
</html>
`

func TestParseWordEntry(t *testing.T) {
	t.Run("Full page", func(t *testing.T) {
		entry, err := ParseWordEntry(sampleWordPage)
		require.NoError(t, err)

		assert.Equal(t, "shrapnel", entry.Word)
		assert.Equal(t, "/ˈʃɹapn(ə)l/", entry.Pronunciation)
		assert.Equal(t, "noun", entry.PartOfSpeech)
		require.Len(t, entry.Definitions, 1)

		definition := entry.Definitions[0]
		assert.Equal(t, "1.", definition.SenseNumber)
		assert.Equal(t, "A type of artillery shell", definition.Text)
		assert.Equal(t, DateRange{From: "1806", To: ""}, definition.DateRange)
		assert.Equal(t, []string{"military", "historical"}, definition.SubjectTags)
		require.Len(t, definition.Quotations, 1)
		assert.Equal(t, Quotation{
			Date:     "1806",
			Text:     "The shells burst with great effect.",
			Citation: "Military Journal",
		}, definition.Quotations[0])
	})

	t.Run("Minimal page without optional fields", func(t *testing.T) {
		entry, err := ParseWordEntry(`
			<html>
			  <h1 class="headword-group"><span class="headword">test</span></h1>
			  <section id="meaning_and_use">
			    <ol>
			      <li class="sense"><div class="definition">A simple test</div></li>
			    </ol>
			  </section>
			</html>`)
		require.NoError(t, err)

		assert.Equal(t, "test", entry.Word)
		assert.Empty(t, entry.Pronunciation)
		require.Len(t, entry.Definitions, 1)
		assert.Equal(t, "A simple test", entry.Definitions[0].Text)
		assert.Empty(t, entry.Definitions[0].Quotations)
		assert.Empty(t, entry.Definitions[0].SubjectTags)
	})

	t.Run("Sense container without its own definition is skipped", func(t *testing.T) {
		entry, err := ParseWordEntry(`
			<html>
			  <h1 class="headword-group"><span class="headword">test</span></h1>
			  <section id="meaning_and_use">
			    <ol>
			      <li class="item">
			        <ol>
			          <li class="sense"><div class="definition">Subsense definition</div></li>
			        </ol>
			      </li>
			    </ol>
			  </section>
			</html>`)
		require.NoError(t, err)
		// the outer item finds the nested definition, the subsense repeats it
		require.NotEmpty(t, entry.Definitions)
		assert.Equal(t, "Subsense definition", entry.Definitions[0].Text)
	})

	t.Run("Quotation missing a citation is dropped", func(t *testing.T) {
		entry, err := ParseWordEntry(`
			<html>
			  <h1 class="headword-group"><span class="headword">test</span></h1>
			  <section id="meaning_and_use">
			    <ol>
			      <li class="sense">
			        <div class="definition">A definition</div>
			        <ol>
			          <li class="quotation">
			            <div class="quotation-date">1900</div>
			            <blockquote class="quotation-text">No citation here.</blockquote>
			          </li>
			        </ol>
			      </li>
			    </ol>
			  </section>
			</html>`)
		require.NoError(t, err)
		require.Len(t, entry.Definitions, 1)
		assert.Empty(t, entry.Definitions[0].Quotations)
	})

	tests := []struct {
		name       string
		content    string
		wantMarker string
	}{
		{
			name:       "Empty page",
			content:    "<html></html>",
			wantMarker: "headword-group",
		},
		{
			name: "Missing headword",
			content: `<html>
				<h1 class="headword-group"></h1>
				<section id="meaning_and_use"><li class="sense"><div class="definition">x</div></li></section>
			</html>`,
			wantMarker: "headword",
		},
		{
			name: "Missing meanings section",
			content: `<html>
				<h1 class="headword-group"><span class="headword">test</span></h1>
			</html>`,
			wantMarker: "meaning_and_use",
		},
		{
			name: "Meanings section without definitions",
			content: `<html>
				<h1 class="headword-group"><span class="headword">test</span></h1>
				<section id="meaning_and_use"><ol><li class="sense"></li></ol></section>
			</html>`,
			wantMarker: "definition",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWordEntry(tt.content)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Contains(t, parseErr.Marker, tt.wantMarker)
		})
	}
}

func TestParseEtymology(t *testing.T) {
	t.Run("Full etymology page", func(t *testing.T) {
		etymology, err := ParseEtymology(`
			<html>
			  <section id="etymology">
			    <div class="etymology-summary">
			      <div>A borrowing from Latin.</div>
			      <p>Etymons:
			        <span class="language-name">Latin</span> <span class="foreign-form">testum</span>,
			        <span class="language-name">French</span> <span class="foreign-form">test</span>
			      </p>
			    </div>
			    <div id="main_etymology_complete">
			      <p>From Latin <i>testum</i> (earthen vessel).</p>
			      <button>Show less</button>
			    </div>
			  </section>
			</html>`)
		require.NoError(t, err)

		assert.Equal(t, "A borrowing from Latin.", etymology.Summary)
		assert.Equal(t, []Etymon{
			{Language: "Latin", Form: "testum"},
			{Language: "French", Form: "test"},
		}, etymology.Etymons)
		assert.Equal(t, "From Latin testum (earthen vessel).", etymology.Full)
	})

	t.Run("No etymons", func(t *testing.T) {
		etymology, err := ParseEtymology(`
			<html>
			  <section id="etymology">
			    <div class="etymology-summary"><div>Origin uncertain.</div></div>
			    <div id="main_etymology_complete">Origin uncertain, compare earlier forms.</div>
			  </section>
			</html>`)
		require.NoError(t, err)

		assert.Equal(t, "Origin uncertain.", etymology.Summary)
		assert.Empty(t, etymology.Etymons)
		assert.Equal(t, "Origin uncertain, compare earlier forms.", etymology.Full)
	})

	tests := []struct {
		name       string
		content    string
		wantMarker string
	}{
		{
			name:       "Missing etymology section",
			content:    "<html></html>",
			wantMarker: "etymology",
		},
		{
			name: "Missing summary",
			content: `<html><section id="etymology">
				<div id="main_etymology_complete">text</div>
			</section></html>`,
			wantMarker: "etymology summary",
		},
		{
			name: "Missing full etymology",
			content: `<html><section id="etymology">
				<div class="etymology-summary"><div>Summary.</div></div>
			</section></html>`,
			wantMarker: "main etymology",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEtymology(tt.content)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Contains(t, parseErr.Marker, tt.wantMarker)
		})
	}
}

func TestExtractWordOfTheDayPath(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantPath  string
		wantError bool
	}{
		{
			name: "Homepage with word of the day link",
			content: `<html><body>
				<div class="wotd">
					<a href="/word-of-the-day/shrapnel">Word of the Day: shrapnel</a>
				</div>
			</body></html>`,
			wantPath: "/word-of-the-day/shrapnel",
		},
		{
			name:      "Homepage without wotd section",
			content:   "<html><body></body></html>",
			wantError: true,
		},
		{
			name:      "Wotd section without link",
			content:   `<html><body><div class="wotd">today</div></body></html>`,
			wantError: true,
		},
		{
			name:      "Link without href",
			content:   `<html><body><div class="wotd"><a>today</a></div></body></html>`,
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ExtractWordOfTheDayPath(tt.content)
			if tt.wantError {
				require.Error(t, err)
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DateRange
	}{
		{name: "Open range", text: "1806–", want: DateRange{From: "1806"}},
		{name: "Closed range", text: "1806–1920", want: DateRange{From: "1806", To: "1920"}},
		{name: "Plain hyphen", text: "1806-1920", want: DateRange{From: "1806", To: "1920"}},
		{name: "Single date", text: "1806", want: DateRange{From: "1806"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDateRange(tt.text))
		})
	}
}
