package cli

import (
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/agenda"
	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/model"
	"github.com/rcliao/inkind/internal/policy"
	"github.com/rcliao/inkind/internal/seniority"
	"github.com/rcliao/inkind/internal/valuation"
)

// valueOptions are the flags of the value command.
type valueOptions struct {
	speaker, firm, economy string
	category, rationale    string
	hours                  string
	agendaPath, bioPath    string
	window                 int
	mode                   string
	engagements            []string
	date                   string
	laborAllocation        string
	docs                   string

	travel               bool
	tripID               string
	airfare, airfareBand string
	origin, destination  string
	lodgingRate, mieRate string
	start, end           string
	workshops            int
}

func init() {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Value one speaker's contribution over one or more engagements",
		Long: "Compute labor (hours x multiplier x category rate) and, for privately funded travel,\n" +
			"the trip cost shared across its workshops, then emit one In-kind record per engagement.\n" +
			"The category is suggested from --bio or --agenda unless --category confirms one.",
		Example: "  inkind value -s \"Jane Smith\" --agenda agenda.txt -e APEC-DT-01@2025-11-05 \\\n" +
			"    --travel --start 2025-11-03 --end 2025-11-07 --origin Peru --destination Japan \\\n" +
			"    --lodging-rate 150 --mie-rate 75 --category executive --save",
		Run: runValue,
	}

	f := cmd.Flags()
	f.StringP("speaker", "s", "", "Speaker name (required)")
	f.String("firm", "", "Firm or organization the speaker represents")
	f.String("economy", "", "Economy the speaker represents")
	f.StringP("category", "c", "", "Confirmed category: executive or specialist")
	f.String("rationale", "", "Category assignment rationale (defaults to the suggestion's)")
	f.String("hours", "", "Presentation hours (overrides hours parsed from --agenda)")
	f.StringP("agenda", "a", "", "Agenda text file for hours and classification")
	f.StringP("mode", "m", "span", "Agenda attribution mode: span or line")
	f.String("bio", "", "Bio text file for classification")
	f.IntP("window", "w", 2, "Lines of bio context either side of the speaker's name")
	f.StringArrayP("engagement", "e", nil, "Engagement as REF or REF@YYYY-MM-DD (repeatable, required)")
	f.String("date", "", "Date for engagements given without one (YYYY-MM-DD)")
	f.String("labor-allocation", "", "split or per_engagement (default from policy)")
	f.String("docs", "", "Documentation links")

	f.Bool("travel", false, "Travel was privately funded and is eligible")
	f.String("trip", "", "Trip ID shared by every engagement of the trip (default: generated)")
	f.String("airfare", "", "Airfare entered manually")
	f.String("airfare-band", "", "Flat airfare band from the policy (e.g. domestic, regional, intercontinental)")
	f.String("origin", "", "Origin economy for region-based airfare")
	f.String("destination", "", "Destination economy for region-based airfare")
	f.String("lodging-rate", "", "Lodging rate per night")
	f.String("mie-rate", "", "M&IE rate per day")
	f.String("start", "", "Trip start date (YYYY-MM-DD)")
	f.String("end", "", "Trip end date (YYYY-MM-DD)")
	f.Int("workshops", 0, "Workshops covered by the trip (default: number of engagements)")

	f.Bool("save", false, "Store the records")

	cmd.MarkFlagRequired("speaker")
	cmd.MarkFlagRequired("engagement")
	cmd.MarkFlagsMutuallyExclusive("airfare", "airfare-band")

	RootCmd.AddCommand(cmd)
}

func runValue(cmd *cobra.Command, args []string) {
	f := cmd.Flags()
	var o valueOptions
	o.speaker, _ = f.GetString("speaker")
	o.firm, _ = f.GetString("firm")
	o.economy, _ = f.GetString("economy")
	o.category, _ = f.GetString("category")
	o.rationale, _ = f.GetString("rationale")
	o.hours, _ = f.GetString("hours")
	o.agendaPath, _ = f.GetString("agenda")
	o.mode, _ = f.GetString("mode")
	o.bioPath, _ = f.GetString("bio")
	o.window, _ = f.GetInt("window")
	o.engagements, _ = f.GetStringArray("engagement")
	o.date, _ = f.GetString("date")
	o.laborAllocation, _ = f.GetString("labor-allocation")
	o.docs, _ = f.GetString("docs")
	o.travel, _ = f.GetBool("travel")
	o.tripID, _ = f.GetString("trip")
	o.airfare, _ = f.GetString("airfare")
	o.airfareBand, _ = f.GetString("airfare-band")
	o.origin, _ = f.GetString("origin")
	o.destination, _ = f.GetString("destination")
	o.lodgingRate, _ = f.GetString("lodging-rate")
	o.mieRate, _ = f.GetString("mie-rate")
	o.start, _ = f.GetString("start")
	o.end, _ = f.GetString("end")
	o.workshops, _ = f.GetInt("workshops")
	save, _ := f.GetBool("save")

	p := loadPolicy()
	req, err := o.request(p)
	if err != nil {
		exitErr("value", err)
	}

	result, err := valuation.Valuate(p, req)
	if err != nil {
		exitErr("value", err)
	}
	for _, w := range result.Warnings {
		logger.Warn("data quality", "code", w.Code, "speaker", o.speaker, "message", w.Message)
	}

	if save {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		stored, err := s.PutBatch(cmd.Context(), result.Records)
		if err != nil {
			exitErr("save", err)
		}
		result.Records = stored
		logger.Info("saved", "speaker", o.speaker, "records", len(stored), "total", result.TotalValue.StringFixed(2))
	}

	if err := format.WriteResult(cmd.OutOrStdout(), result, cfg.Format); err != nil {
		exitErr("write", err)
	}
}

// request turns the flags into a valuation request, reading the agenda and
// bio and suggesting a category when none is confirmed.
func (o valueOptions) request(p *policy.Policy) (valuation.Request, error) {
	req := valuation.Request{
		Speaker:            o.speaker,
		Firm:               o.firm,
		Economy:            o.economy,
		CategoryRationale:  o.rationale,
		DocumentationLinks: o.docs,
		PresentationHours:  decimal.Zero,
	}

	mode, err := agenda.ParseMode(o.mode)
	if err != nil {
		return req, err
	}
	if req.LaborAllocation, err = policy.ParseLaborAllocation(o.laborAllocation); err != nil {
		return req, err
	}
	if o.category != "" {
		if req.Category, err = model.ParseCategory(o.category); err != nil {
			return req, err
		}
	}
	if req.Engagements, err = parseEngagements(o.engagements, o.date); err != nil {
		return req, err
	}
	if len(req.Engagements) == 0 {
		return req, valuation.ErrNoEngagements
	}

	var agendaText string
	if o.agendaPath != "" {
		if agendaText, err = readText(o.agendaPath); err != nil {
			return req, fmt.Errorf("read agenda: %w", err)
		}
	}

	switch {
	case o.hours != "":
		if req.PresentationHours, err = parseAmount("hours", o.hours); err != nil {
			return req, err
		}
		if req.PresentationHours.IsNegative() {
			return req, errors.New("--hours must not be negative")
		}
	case o.agendaPath != "":
		a := agenda.SpeakerHours(agendaText, o.speaker, mode)
		req.PresentationHours = a.Hours
		req.SpeakerNotFound = !a.Found()
	}

	if req.Category == "" {
		var window string
		switch {
		case o.bioPath != "":
			bio, err := readText(o.bioPath)
			if err != nil {
				return req, fmt.Errorf("read bio: %w", err)
			}
			window = seniority.Excerpt(bio, o.speaker, o.window)
		case o.agendaPath != "":
			window = seniority.AgendaSegment(agendaText, o.speaker, mode)
		}
		req.Suggested = seniority.Default().Classify(window)
	}

	if o.travel {
		trip, err := o.trip(p, len(req.Engagements))
		if err != nil {
			return req, err
		}
		req.Trip = &trip
	}
	return req, nil
}

func (o valueOptions) trip(p *policy.Policy, engagements int) (model.Trip, error) {
	if o.start == "" || o.end == "" {
		return model.Trip{}, errors.New("--travel needs --start and --end")
	}
	start, err := parseDate(o.start)
	if err != nil {
		return model.Trip{}, err
	}
	end, err := parseDate(o.end)
	if err != nil {
		return model.Trip{}, err
	}

	var fare model.Suggested[decimal.Decimal]
	switch {
	case o.airfare != "":
		amt, err := parseAmount("airfare", o.airfare)
		if err != nil {
			return model.Trip{}, err
		}
		if fare, err = valuation.ManualAirfare(amt); err != nil {
			return model.Trip{}, err
		}
	case o.airfareBand != "":
		if fare, err = valuation.BandAirfare(p, o.airfareBand); err != nil {
			return model.Trip{}, err
		}
	case o.origin != "" && o.destination != "":
		fare = valuation.RegionAirfare(p, o.origin, o.destination)
	default:
		fare.Rationale = "no airfare source given"
	}
	logger.Info("airfare", "amount", fare.Value.StringFixed(2), "rationale", fare.Rationale)

	lodging, err := parseAmount("lodging-rate", o.lodgingRate)
	if err != nil {
		return model.Trip{}, err
	}
	mie, err := parseAmount("mie-rate", o.mieRate)
	if err != nil {
		return model.Trip{}, err
	}

	workshops := o.workshops
	if workshops == 0 {
		workshops = engagements
	}
	id := o.tripID
	if id == "" {
		id = ulid.Make().String()
	}

	return model.Trip{
		ID:            id,
		Origin:        o.origin,
		Destination:   o.destination,
		StartDate:     start,
		EndDate:       end,
		Airfare:       fare.Value,
		LodgingRate:   lodging,
		MIERate:       mie,
		WorkshopCount: workshops,
	}, nil
}
