package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"movie-booking-cli/model"
	"movie-booking-cli/service"
)

type appState int

const (
	stateMenu appState = iota
	stateListShows
	stateSelectShow
	stateSeatMap
	stateEnterSeats
	stateConfirmBooking
	stateEnterBookingID
	stateConfirmCancel
	stateListBookings
	stateAddShow
	stateResult
	stateError
)

// showAction says why a show is being selected: to view its seat map
// or to start a booking.
type showAction int

const (
	actionSeatMap showAction = iota
	actionBook
)

type appModel struct {
	catalog *service.Catalog
	ledger  *service.Ledger
	engine  *service.Engine

	state     appState
	lastState appState
	err       error

	width  int
	height int

	menuList   list.Model
	showList   list.Model
	showAction showAction

	show          *model.Show
	plan          *service.Plan
	pendingCancel *model.Booking
	resultText    string

	seatInput   textinput.Model
	cancelInput textinput.Model

	addInputs []textinput.Model
	addFocus  int
	addErr    string
}

// New builds the interactive menu over the given services.
func New(catalog *service.Catalog, ledger *service.Ledger, engine *service.Engine) tea.Model {
	m := appModel{
		catalog: catalog,
		ledger:  ledger,
		engine:  engine,
		state:   stateMenu,
	}

	m.menuList = newList("Movie Ticket Booking")
	m.menuList.SetFilteringEnabled(false)
	m.menuList.SetItems(menuItems())

	m.showList = newList("Select Show")

	m.seatInput = textinput.New()
	m.seatInput.Placeholder = "A1,A2"
	m.seatInput.CharLimit = 120
	m.seatInput.Width = 40

	m.cancelInput = textinput.New()
	m.cancelInput.Placeholder = "booking id"
	m.cancelInput.CharLimit = 36
	m.cancelInput.Width = 40

	m.addInputs = newAddInputs()

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		var handled bool
		var cmd tea.Cmd
		m, cmd, handled = m.handleKey(msg)
		if handled {
			return m, cmd
		}
	}

	return m.updateActiveComponent(msg)
}

func (m appModel) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		m.menuList, cmd = m.menuList.Update(msg)
	case stateSelectShow:
		m.showList, cmd = m.showList.Update(msg)
	case stateEnterSeats:
		m.seatInput, cmd = m.seatInput.Update(msg)
	case stateEnterBookingID:
		m.cancelInput, cmd = m.cancelInput.Update(msg)
	case stateAddShow:
		m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		return m.goBack()
	}

	switch m.state {
	case stateMenu:
		if msg.Type == tea.KeyEnter {
			return m.openMenuSelection()
		}
	case stateSelectShow:
		if msg.Type == tea.KeyEnter && !m.showList.SettingFilter() {
			return m.openShowSelection()
		}
	case stateEnterSeats:
		if msg.Type == tea.KeyEnter {
			return m.planBooking()
		}
	case stateConfirmBooking:
		switch msg.String() {
		case "y", "Y":
			return m.commitBooking()
		case "n", "N":
			return m.toMenu("Booking cancelled.")
		}
	case stateEnterBookingID:
		if msg.Type == tea.KeyEnter {
			return m.lookupCancel()
		}
	case stateConfirmCancel:
		switch msg.String() {
		case "y", "Y":
			return m.commitCancel()
		case "n", "N":
			return m.toMenu("Cancellation aborted.")
		}
	case stateAddShow:
		switch msg.Type {
		case tea.KeyEnter:
			if m.addFocus == len(m.addInputs)-1 {
				return m.submitAddShow()
			}
			return m.focusAddInput(m.addFocus + 1)
		case tea.KeyTab, tea.KeyDown:
			return m.focusAddInput((m.addFocus + 1) % len(m.addInputs))
		case tea.KeyShiftTab, tea.KeyUp:
			return m.focusAddInput((m.addFocus + len(m.addInputs) - 1) % len(m.addInputs))
		}
	case stateListShows, stateListBookings, stateSeatMap, stateResult, stateError:
		if msg.Type == tea.KeyEnter {
			return m.goBack()
		}
		if msg.String() == "q" {
			return m, tea.Quit, true
		}
	}

	return m, nil, false
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateMenu:
		return m, tea.Quit, true
	case stateSelectShow:
		if m.showList.SettingFilter() || m.showList.IsFiltered() {
			m.showList.ResetFilter()
			return m, nil, true
		}
		m.state = stateMenu
	case stateEnterSeats:
		m.state = stateSelectShow
	case stateConfirmBooking:
		m.plan = nil
		m.state = stateEnterSeats
		m.seatInput.Focus()
	case stateConfirmCancel:
		m.pendingCancel = nil
		m.state = stateEnterBookingID
		m.cancelInput.Focus()
	case stateError:
		m.err = nil
		m.state = m.lastState
	default:
		m.state = stateMenu
	}
	return m, nil, true
}

func (m appModel) openMenuSelection() (appModel, tea.Cmd, bool) {
	item, ok := m.menuList.SelectedItem().(menuItem)
	if !ok {
		return m, nil, true
	}
	switch item.id {
	case menuListShows:
		m.state = stateListShows
	case menuSeatMap:
		return m.openShowList(actionSeatMap)
	case menuBook:
		return m.openShowList(actionBook)
	case menuCancel:
		m.cancelInput.SetValue("")
		m.cancelInput.Focus()
		m.state = stateEnterBookingID
	case menuBookings:
		m.state = stateListBookings
	case menuAddShow:
		m.addInputs = newAddInputs()
		m.addErr = ""
		return m.focusAddInput(0)
	case menuQuit:
		return m, tea.Quit, true
	}
	return m, nil, true
}

func (m appModel) openShowList(action showAction) (appModel, tea.Cmd, bool) {
	shows := m.catalog.Shows()
	if len(shows) == 0 {
		return m.fail(fmt.Errorf("no shows in the catalog yet"), stateMenu)
	}
	m.showAction = action
	items := make([]list.Item, 0, len(shows))
	for _, s := range shows {
		items = append(items, showItem{show: s})
	}
	m.showList.SetItems(items)
	m.showList.ResetFilter()
	if action == actionBook {
		m.showList.Title = "Book Seats • Select Show"
	} else {
		m.showList.Title = "Seat Map • Select Show"
	}
	m.state = stateSelectShow
	m.resizeLists()
	return m, nil, true
}

func (m appModel) openShowSelection() (appModel, tea.Cmd, bool) {
	item, ok := m.showList.SelectedItem().(showItem)
	if !ok {
		return m, nil, true
	}
	m.show = item.show
	if m.showAction == actionSeatMap {
		m.state = stateSeatMap
		return m, nil, true
	}
	m.seatInput.SetValue("")
	m.seatInput.Focus()
	m.state = stateEnterSeats
	return m, nil, true
}

func (m appModel) planBooking() (appModel, tea.Cmd, bool) {
	labels := strings.Split(m.seatInput.Value(), ",")
	plan, err := m.engine.Plan(m.show, labels)
	if err != nil {
		return m.fail(err, stateEnterSeats)
	}
	m.plan = plan
	m.seatInput.Blur()
	m.state = stateConfirmBooking
	return m, nil, true
}

func (m appModel) commitBooking() (appModel, tea.Cmd, bool) {
	booking, err := m.engine.Commit(m.plan)
	m.plan = nil
	if booking == nil {
		return m.fail(err, stateEnterSeats)
	}
	text := fmt.Sprintf("Booking successful! Booking ID: %s\nSeats: %s\nAmount: %.2f",
		booking.BookingID, strings.Join(booking.Seats, ", "), booking.Amount)
	if err != nil {
		text += "\n" + fmt.Sprintf("Warning: state not saved: %v", err)
	}
	return m.toMenu(text)
}

func (m appModel) lookupCancel() (appModel, tea.Cmd, bool) {
	id := strings.TrimSpace(m.cancelInput.Value())
	booking, ok := m.ledger.Find(id)
	if !ok {
		return m.fail(fmt.Errorf("%w: %s", service.ErrNotFound, id), stateEnterBookingID)
	}
	m.pendingCancel = booking
	m.cancelInput.Blur()
	m.state = stateConfirmCancel
	return m, nil, true
}

func (m appModel) commitCancel() (appModel, tea.Cmd, bool) {
	booking := m.pendingCancel
	m.pendingCancel = nil
	text := "Booking cancelled and seats freed."
	if _, err := m.engine.Cancel(booking.BookingID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return m.fail(err, stateEnterBookingID)
		}
		text += fmt.Sprintf("\nWarning: state not saved: %v", err)
	}
	return m.toMenu(text)
}

func (m appModel) submitAddShow() (appModel, tea.Cmd, bool) {
	title := strings.TrimSpace(m.addInputs[addFieldTitle].Value())
	when := strings.TrimSpace(m.addInputs[addFieldTime].Value())
	if title == "" || when == "" {
		m.addErr = "title and time are required"
		return m, nil, true
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(m.addInputs[addFieldPrice].Value()), 64)
	if err != nil {
		m.addErr = "price must be a number"
		return m, nil, true
	}
	rows, err := strconv.Atoi(strings.TrimSpace(m.addInputs[addFieldRows].Value()))
	if err != nil {
		m.addErr = "rows must be a number"
		return m, nil, true
	}
	cols, err := strconv.Atoi(strings.TrimSpace(m.addInputs[addFieldCols].Value()))
	if err != nil {
		m.addErr = "cols must be a number"
		return m, nil, true
	}

	show, err := m.catalog.Add(title, when, price, rows, cols)
	if err != nil && show == nil {
		m.addErr = err.Error()
		return m, nil, true
	}
	text := fmt.Sprintf("Added show %s.", show.ShowID)
	if err != nil {
		text += fmt.Sprintf("\nWarning: state not saved: %v", err)
	}
	return m.toMenu(text)
}

func (m appModel) focusAddInput(i int) (appModel, tea.Cmd, bool) {
	m.addFocus = i
	for j := range m.addInputs {
		if j == i {
			m.addInputs[j].Focus()
		} else {
			m.addInputs[j].Blur()
		}
	}
	m.state = stateAddShow
	return m, textinput.Blink, true
}

func (m appModel) toMenu(result string) (appModel, tea.Cmd, bool) {
	m.resultText = result
	m.state = stateResult
	return m, nil, true
}

func (m appModel) fail(err error, returnTo appState) (appModel, tea.Cmd, bool) {
	m.err = err
	m.lastState = returnTo
	m.state = stateError
	return m, nil, true
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	m.menuList.SetSize(m.width-2, h)
	m.showList.SetSize(m.width-2, h)
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateMenu:
		return header + "\n\n" + m.menuList.View()
	case stateListShows:
		return header + "\n\n" + showsTable(m.catalog.Shows()) + "\n\n" + hint("Press esc or enter to go back.")
	case stateSelectShow:
		return header + "\n\n" + m.showList.View()
	case stateSeatMap:
		return header + "\n\n" + renderSeatMap(m.show) + "\n\n" + hint("Press esc or enter to go back.")
	case stateEnterSeats:
		return header + "\n\n" + m.enterSeatsView()
	case stateConfirmBooking:
		return header + "\n\n" + m.confirmBookingView()
	case stateEnterBookingID:
		return header + "\n\n" + "Booking ID to cancel:\n\n" + m.cancelInput.View() + "\n\n" + hint("enter look up • esc back")
	case stateConfirmCancel:
		return header + "\n\n" + m.confirmCancelView()
	case stateListBookings:
		return header + "\n\n" + bookingsTable(m.ledger.Bookings()) + "\n\n" + hint("Press esc or enter to go back.")
	case stateAddShow:
		return header + "\n\n" + m.addShowView()
	case stateResult:
		return header + "\n\n" + successStyle.Render(m.resultText) + "\n\n" + hint("Press esc or enter for the menu.")
	case stateError:
		return header + "\n\n" + errorStyle.Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Movie Ticket Booking")
	sub := []string{}
	if m.show != nil && (m.state == stateSeatMap || m.state == stateEnterSeats || m.state == stateConfirmBooking) {
		sub = append(sub, fmt.Sprintf("Show: %s • %s", m.show.Title, m.show.Time))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + hint(meta)
	}
	hints := "ctrl+c quit • esc back"
	switch m.state {
	case stateMenu:
		hints = "ctrl+c quit • enter select • esc quit"
	case stateSelectShow:
		hints = "ctrl+c quit • esc back • type to filter • enter select"
	case stateConfirmBooking, stateConfirmCancel:
		hints = "y confirm • n abort • esc back"
	case stateAddShow:
		hints = "tab next field • enter submit • esc back"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) enterSeatsView() string {
	var b strings.Builder
	b.WriteString(renderSeatMap(m.show))
	b.WriteString("\n\nSeats to book, separated by commas (e.g. A1,A2):\n\n")
	b.WriteString(m.seatInput.View())
	b.WriteString("\n\n")
	b.WriteString(hint("enter validate • esc back"))
	return b.String()
}

func (m appModel) confirmBookingView() string {
	plan := m.plan
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Booking %d seat(s) for '%s' at %s.\n", len(plan.Seats), plan.Show.Title, plan.Show.Time))
	labels := make([]string, len(plan.Seats))
	for i, seat := range plan.Seats {
		labels[i] = seat.Label
	}
	b.WriteString("Seats: " + strings.Join(labels, ", ") + "\n")
	b.WriteString(fmt.Sprintf("Total: %.2f\n", plan.Total))
	if len(plan.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range plan.Warnings {
			b.WriteString(warnStyle.Render(w.String()) + "\n")
		}
	}
	b.WriteString("\nConfirm booking? (y/n)")
	return b.String()
}

func (m appModel) confirmCancelView() string {
	b := m.pendingCancel
	return fmt.Sprintf("Booking found:\nShow: %s at %s\nSeats: %s\nAmount: %.2f\n\nConfirm cancel? (y/n)",
		b.Title, b.Time, strings.Join(b.Seats, ", "), b.Amount)
}

const (
	addFieldTitle = iota
	addFieldTime
	addFieldPrice
	addFieldRows
	addFieldCols
)

var addFieldNames = [...]string{"Title", "Time (YYYY-MM-DD HH:MM)", "Price", "Rows", "Cols"}

func newAddInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(addFieldNames))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 30
		inputs[i] = ti
	}
	inputs[addFieldTime].Placeholder = "2025-11-26 18:00"
	inputs[addFieldPrice].Placeholder = "150.0"
	inputs[addFieldRows].Placeholder = "5"
	inputs[addFieldCols].Placeholder = "8"
	return inputs
}

func (m appModel) addShowView() string {
	var b strings.Builder
	b.WriteString("Add a new show:\n\n")
	for i, input := range m.addInputs {
		b.WriteString(addFieldNames[i] + "\n")
		b.WriteString(input.View() + "\n")
	}
	if m.addErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.addErr))
	}
	return b.String()
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func showsTable(shows []*model.Show) string {
	if len(shows) == 0 {
		return "No shows in the catalog."
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Title", "Time", "Price", "Seats left"})
	for _, s := range shows {
		t.AppendRow(table.Row{s.ShowID, s.Title, s.Time, fmt.Sprintf("%.2f", s.Price), s.AvailableCount()})
	}
	return t.Render()
}

func bookingsTable(bookings []*model.Booking) string {
	if len(bookings) == 0 {
		return "No bookings found."
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Show", "Time", "Seats", "Amount", "Created"})
	for _, b := range bookings {
		t.AppendRow(table.Row{
			b.BookingID, b.Title, b.Time,
			strings.Join(b.Seats, ", "),
			fmt.Sprintf("%.2f", b.Amount),
			b.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return t.Render()
}

func renderSeatMap(show *model.Show) string {
	grid := show.Seats
	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 {
		return "No seat map data."
	}

	seatAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	cellWidth := len(strconv.Itoa(cols))
	if cellWidth < 2 {
		cellWidth = 2
	}

	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < cols; c++ {
		b.WriteString(fmt.Sprintf("%*d ", cellWidth, c+1))
	}
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		b.WriteString(fmt.Sprintf("%c  ", 'A'+r))
		for c := 0; c < cols; c++ {
			free, _ := grid.Available(r, c)
			if free {
				b.WriteString(seatAvailable.Render(padCell("[]", cellWidth)))
			} else {
				b.WriteString(seatOccupied.Render(padCell("XX", cellWidth)))
			}
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf(" %c\n", 'A'+r))
	}

	gridWidth := cols*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	b.WriteString("\n   ")
	b.WriteString(screenStyle.Render(centerText("SCREEN", gridWidth)))
	b.WriteString("\n\n")

	counts := fmt.Sprintf("Available: %d • Total: %d", grid.AvailableCount(), rows*cols)
	return b.String() + hint("Legend: [] available • XX booked") + "\n" + hint(counts)
}

func padCell(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-left-len(text))
}

type menuID int

const (
	menuListShows menuID = iota
	menuSeatMap
	menuBook
	menuCancel
	menuBookings
	menuAddShow
	menuQuit
)

type menuItem struct {
	id    menuID
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return strings.ToLower(i.title) }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{menuListShows, "List shows", "All shows with prices and seats left"},
		menuItem{menuSeatMap, "View seat map", "Seat availability for one show"},
		menuItem{menuBook, "Book seats", "Reserve seats on a show"},
		menuItem{menuCancel, "Cancel booking", "Free the seats of a booking"},
		menuItem{menuBookings, "My bookings", "All current bookings"},
		menuItem{menuAddShow, "Add a new show", "Create a show with an empty seat grid"},
		menuItem{menuQuit, "Quit", ""},
	}
}

type showItem struct {
	show *model.Show
}

func (i showItem) Title() string {
	return fmt.Sprintf("%s • %s", i.show.ShowID, i.show.Title)
}

func (i showItem) Description() string {
	return fmt.Sprintf("%s • %.2f • %d seats left", i.show.Time, i.show.Price, i.show.AvailableCount())
}

func (i showItem) FilterValue() string {
	return strings.ToLower(i.show.ShowID + " " + i.show.Title)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
