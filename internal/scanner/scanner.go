package scanner

import (
	"github.com/lib/pq"

	model "github.com/GDOmega/pointercrate/internal/models"
)

// rowScanner est satisfait par pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanDemon scanne une ligne SQL vers un Demon
func ScanDemon(scanner rowScanner) (*model.Demon, error) {
	var d model.Demon

	err := scanner.Scan(
		&d.ID, &d.Name, &d.Position, &d.Requirement, &d.Video,
		&d.Verifier, &d.Publisher,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// ScanRecord scanne une ligne SQL vers un Record
func ScanRecord(scanner rowScanner) (*model.Record, error) {
	var r model.Record

	err := scanner.Scan(
		&r.ID, &r.Progress, &r.Video, &r.Status,
		&r.Player, &r.Demon, &r.Position, &r.Submitter, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// ScanNationRecord scanne une ligne SQL vers un NationRecord avec pq.Array
// pour la liste des joueurs
func ScanNationRecord(scanner rowScanner) (*model.NationRecord, error) {
	var r model.NationRecord

	err := scanner.Scan(
		&r.ID, &r.Demon, &r.Position, &r.Progress, pq.Array(&r.Players),
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// ScanNationVerification scanne une ligne SQL vers une NationVerification
func ScanNationVerification(scanner rowScanner) (*model.NationVerification, error) {
	var v model.NationVerification

	err := scanner.Scan(&v.ID, &v.Demon, &v.Position, &v.Player)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// ScanNationCreation scanne une ligne SQL vers une NationCreation avec
// pq.Array pour les créateurs
func ScanNationCreation(scanner rowScanner) (*model.NationCreation, error) {
	var c model.NationCreation

	err := scanner.Scan(&c.ID, &c.Demon, &c.Position, pq.Array(&c.Players))
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanUnbeatenDemon scanne une ligne SQL vers un UnbeatenDemon
func ScanUnbeatenDemon(scanner rowScanner) (*model.UnbeatenDemon, error) {
	var d model.UnbeatenDemon

	err := scanner.Scan(&d.ID, &d.Name, &d.Position)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// ScanPlayer scanne une ligne SQL vers un Player
func ScanPlayer(scanner rowScanner) (*model.Player, error) {
	var p model.Player

	err := scanner.Scan(&p.ID, &p.Name, &p.Banned, &p.Nationality)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// ScanUser scanne une ligne SQL vers un User
func ScanUser(scanner rowScanner) (*model.User, error) {
	var u model.User

	err := scanner.Scan(
		&u.MemberID, &u.Name, &u.PasswordHash, &u.ListTeamMember, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
