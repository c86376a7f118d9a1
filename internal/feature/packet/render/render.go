// Package render serializes research packets into the TICKER_PACKET_V1
// plain-text format.
//
// The format uses strong <<<...>>> delimiters so small language models and
// line-oriented tooling can split sections without a real parser. Section
// order and delimiter spelling are part of the contract; downstream
// consumers match them byte for byte.
package render

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"chart_backend/internal/feature/packet/domain/entity"
)

// pricePlaces fixes price formatting at six decimals so equal prices always
// serialize identically.
const pricePlaces = 6

// WritePacket renders the packet to w in TICKER_PACKET_V1 format. Empty
// sections keep their delimiters with no body, so consumers can always rely
// on every section being present.
func WritePacket(w io.Writer, p entity.Packet) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "<<<TICKER_PACKET_V1>>>")
	fmt.Fprintf(bw, "TICKER: %s\n", p.Symbol)
	fmt.Fprintln(bw, "TZ: America/New_York")
	fmt.Fprintln(bw, "SESSION: REGULAR (09:30-16:00)")
	fmt.Fprintf(bw, "WINDOW_DAYS: %d\n", p.WindowDays)
	fmt.Fprintln(bw, "BAR_SIZE: 1h")
	fmt.Fprintf(bw, "BARS_COUNT: %d\n", len(p.Chart.Bars))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "<<<PRICE_BARS_1H_CSV>>>")
	fmt.Fprintln(bw, "# ts_local,o,h,l,c,v")
	for _, b := range p.Chart.Bars {
		fmt.Fprintf(bw, "%s,%s,%s,%s,%s,%d\n",
			b.BucketStart.Format(time.RFC3339),
			price6(b.Open), price6(b.High), price6(b.Low), price6(b.Close),
			b.Volume)
	}
	fmt.Fprintln(bw, "<<<END_PRICE_BARS_1H_CSV>>>")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "<<<NEWS_TOP10_1W>>>")
	fmt.Fprintln(bw, "# Each line: datetime | source | headline | url")
	for _, n := range p.News {
		fmt.Fprintf(bw, "%s | %s | %s | %s\n",
			n.PublishedAt.UTC().Format(time.RFC3339), n.Source, n.Headline, n.URL)
	}
	fmt.Fprintln(bw, "<<<END_NEWS_TOP10_1W>>>")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "<<<SENATE_ACTIVITY>>>")
	fmt.Fprintln(bw, "# Each line: date | chamber | member_name | activity_type | notes")
	for _, s := range p.Senate {
		fmt.Fprintf(bw, "%s | %s | %s | %s | %s\n",
			s.Date, s.Chamber, s.MemberName, s.ActivityType, s.Notes)
	}
	fmt.Fprintln(bw, "<<<END_SENATE_ACTIVITY>>>")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "<<<FINANCE_SNAPSHOT>>>")
	if f := p.Finance; f != nil {
		fmt.Fprintf(bw, "source: %s\n", f.Source)
		fmt.Fprintf(bw, "asof_utc: %s\n", f.AsOfUTC.UTC().Format(time.RFC3339))
		fmt.Fprintf(bw, "price_last: %s\n", price6(f.PriceLast))
		fmt.Fprintf(bw, "market_cap_approx: %s\n", optFloat(f.MarketCapApprox))
		fmt.Fprintf(bw, "pe_ratio_approx: %s\n", optFloat(f.PERatioApprox))
		fmt.Fprintf(bw, "notes: %q\n", f.Notes)
	}
	fmt.Fprintln(bw, "<<<END_FINANCE_SNAPSHOT>>>")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "<<<NOTES>>>")
	fmt.Fprintln(bw, "- This packet is plain text designed for a 3B LLM and downstream ML models.")
	fmt.Fprintln(bw, "- Parsing is simplified by strong delimiters (<<<...>>>).")
	fmt.Fprintln(bw, "- Bars are for regular US trading sessions only; final bar per day may be shorter.")
	fmt.Fprintln(bw, "- Data quality / licensing for intraday prices and news is handled separately upstream.")
	fmt.Fprintln(bw, "<<<END_NOTES>>>")
	fmt.Fprintln(bw, "<<<END_TICKER_PACKET_V1>>>")

	return bw.Flush()
}

func price6(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(pricePlaces)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}
